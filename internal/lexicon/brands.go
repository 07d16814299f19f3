package lexicon

// brands is the registered OEM table. Order matters: it breaks ties between
// brands with equal match scores.
func brands() []Brand {
	return []Brand{
		{
			Name:     "Ola Electric",
			Primary:  []string{"ola electric", "ola"},
			Products: []string{"s1 pro", "s1 air", "s1x", "s1 x", "ola s1", "roadster", "s1"},
			Variants: []string{"olaa", "ola scooter", "ola ev", "bhavish", "ola wala"},
		},
		{
			Name:     "Ather",
			Primary:  []string{"ather energy", "ather"},
			Products: []string{"450x", "450s", "450 apex", "450 plus", "rizta"},
			Variants: []string{"athr", "aether", "ather wala", "ather grid"},
		},
		{
			Name:     "TVS iQube",
			Primary:  []string{"tvs iqube", "iqube"},
			Products: []string{"iqube s", "iqube st"},
			Variants: []string{"tvs electric", "i qube", "tvs"},
		},
		{
			Name:     "Bajaj Chetak",
			Primary:  []string{"bajaj chetak", "chetak"},
			Products: []string{"chetak premium", "chetak urbane", "chetak 3201", "chetak 2901"},
			Variants: []string{"bajaj ev", "bajaj electric", "bajaj"},
		},
		{
			Name:     "Hero Vida",
			Primary:  []string{"hero vida", "vida"},
			Products: []string{"vida v1", "v1 pro", "v1 plus", "vida v2", "v2 pro"},
			Variants: []string{"hero ev", "hero electric scooter", "hero"},
		},
		{
			Name:     "Simple Energy",
			Primary:  []string{"simple energy", "simple one"},
			Products: []string{"simple dot one"},
			Variants: []string{"simple ev"},
		},
		{
			Name:     "Ampere",
			Primary:  []string{"ampere"},
			Products: []string{"nexus", "magnus", "primus"},
			Variants: []string{"greaves electric", "greaves"},
		},
		{
			Name:     "Okinawa",
			Primary:  []string{"okinawa"},
			Products: []string{"praise pro", "ipraise", "okhi 90"},
			Variants: []string{"okinawa autotech"},
		},
		{
			Name:     "Revolt",
			Primary:  []string{"revolt"},
			Products: []string{"rv400", "rv 400", "rv1"},
			Variants: []string{"revolt motors"},
		},
		{
			Name:     "Tata Motors",
			Primary:  []string{"tata motors", "tata"},
			Products: []string{"nexon ev", "tiago ev", "punch ev", "tigor ev", "curvv"},
			Variants: []string{"tata ev"},
		},
		{
			Name:     "MG Motor",
			Primary:  []string{"mg motor"},
			Products: []string{"zs ev", "comet ev", "windsor"},
			Variants: []string{"mg ev"},
		},
		{
			Name:     "Mahindra",
			Primary:  []string{"mahindra"},
			Products: []string{"xuv400", "be 6", "xev 9e"},
			Variants: []string{"mahindra electric"},
		},
	}
}
