package technique

// Catalogue lists every technique in priority order: a solver walks it
// top to bottom and restarts from the top after each success (spec.md
// §4.6's pedagogical ordering — always try the simplest applicable move).
// Grounded on the teacher's technique_registry.go ordering convention,
// generalised from the teacher's fixed 12-entry table to the full ~35
// names spec.md's inventory requires.
func Catalogue() []Technique {
	return []Technique{
		{ID: "fh", Name: "Full House", Tier: TierSimple, Priority: 0, Apply: FullHouse},
		{ID: "n1", Name: "Naked Single", Tier: TierSimple, Priority: 1, Apply: NakedSingle},
		{ID: "h1", Name: "Hidden Single", Tier: TierSimple, Priority: 2, Apply: HiddenSingle},

		{ID: "lc1", Name: "Pointing", Tier: TierSimple, Priority: 10, Apply: Pointing},
		{ID: "lc2", Name: "Claiming", Tier: TierSimple, Priority: 11, Apply: Claiming},
		{ID: "l2", Name: "Locked Pair", Tier: TierSimple, Priority: 12, Apply: LockedPair},
		{ID: "l3", Name: "Locked Triple", Tier: TierSimple, Priority: 13, Apply: LockedTriple},

		{ID: "n2", Name: "Naked Pair", Tier: TierSimple, Priority: 20, Apply: NakedPair},
		{ID: "h2", Name: "Hidden Pair", Tier: TierSimple, Priority: 21, Apply: HiddenPair},
		{ID: "n3", Name: "Naked Triple", Tier: TierMedium, Priority: 22, Apply: NakedTriple},
		{ID: "h3", Name: "Hidden Triple", Tier: TierMedium, Priority: 23, Apply: HiddenTriple},
		{ID: "n4", Name: "Naked Quad", Tier: TierMedium, Priority: 24, Apply: NakedQuad},
		{ID: "h4", Name: "Hidden Quad", Tier: TierMedium, Priority: 25, Apply: HiddenQuad},

		{ID: "sk", Name: "Skyscraper", Tier: TierMedium, Priority: 30, Apply: Skyscraper},
		{ID: "2sk", Name: "2-String Kite", Tier: TierMedium, Priority: 31, Apply: TwoStringKite},
		{ID: "tf", Name: "Turbot Fish", Tier: TierMedium, Priority: 32, Apply: TurbotFish},
		{ID: "er", Name: "Empty Rectangle", Tier: TierMedium, Priority: 33, Apply: EmptyRectangle},

		{ID: "bf2", Name: "X-Wing", Tier: TierMedium, Priority: 40, Apply: BasicFish2},
		{ID: "xy", Name: "XY-Wing", Tier: TierMedium, Priority: 41, Apply: XYWing},
		{ID: "xyz", Name: "XYZ-Wing", Tier: TierMedium, Priority: 42, Apply: XYZWing},
		{ID: "w", Name: "W-Wing", Tier: TierMedium, Priority: 43, Apply: WWing},

		{ID: "u1", Name: "Unique Rectangle (Type 1)", Tier: TierMedium, Priority: 50, Apply: UniqueRectangleType1},
		{ID: "u2", Name: "Unique Rectangle (Type 2)", Tier: TierMedium, Priority: 51, Apply: UniqueRectangleType2},
		{ID: "u3", Name: "Unique Rectangle (Type 3)", Tier: TierMedium, Priority: 52, Apply: UniqueRectangleType3},
		{ID: "u4", Name: "Unique Rectangle (Type 4)", Tier: TierMedium, Priority: 53, Apply: UniqueRectangleType4},
		{ID: "hr", Name: "Hidden Rectangle", Tier: TierMedium, Priority: 54, Apply: HiddenRectangle},
		{ID: "ar1", Name: "Avoidable Rectangle (Type 1)", Tier: TierMedium, Priority: 55, Apply: AvoidableRectangle1},
		{ID: "ar2", Name: "Avoidable Rectangle (Type 2)", Tier: TierMedium, Priority: 56, Apply: AvoidableRectangle2},
		{ID: "bug1", Name: "BUG+1", Tier: TierMedium, Priority: 57, Apply: BUG1},

		{ID: "bf3", Name: "Swordfish", Tier: TierHard, Priority: 60, Apply: BasicFish3},
		{ID: "fbf2", Name: "Finned X-Wing", Tier: TierHard, Priority: 61, Apply: FinnedFish2},
		{ID: "fbf3", Name: "Finned Swordfish", Tier: TierHard, Priority: 62, Apply: FinnedFish3},
		{ID: "sc1", Name: "Simple Colouring (Trap)", Tier: TierHard, Priority: 63, Apply: ColourTrap},
		{ID: "sc2", Name: "Simple Colouring (Wrap)", Tier: TierHard, Priority: 64, Apply: ColourWrap},
		{ID: "x", Name: "X-Chain", Tier: TierHard, Priority: 65, Apply: XChain},
		{ID: "rp", Name: "Remote Pair", Tier: TierHard, Priority: 66, Apply: RemotePair},
		{ID: "xyc", Name: "XY-Chain", Tier: TierHard, Priority: 67, Apply: XYChain},
		{ID: "sdc", Name: "Sue de Coq", Tier: TierHard, Priority: 68, Apply: SueDeCoq},

		{ID: "bf4", Name: "Jellyfish", Tier: TierExtreme, Priority: 70, Apply: BasicFish4},
		{ID: "fbf4", Name: "Finned Jellyfish", Tier: TierExtreme, Priority: 71, Apply: FinnedFish4},
		{ID: "mc1", Name: "Multi-Colouring (Type 1)", Tier: TierExtreme, Priority: 72, Apply: MultiColourType1},
		{ID: "mc2", Name: "Multi-Colouring (Type 2)", Tier: TierExtreme, Priority: 73, Apply: MultiColourType2},
	}
}

// ByID indexes Catalogue() for strategy-string lookup.
func ByID() map[string]Technique {
	out := map[string]Technique{}
	for _, t := range Catalogue() {
		out[t.ID] = t
	}
	return out
}
