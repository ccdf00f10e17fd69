package httpapi

import "helixd/pkg/types"

// Static educational content served under /education.

var dnaFacts = []types.Fact{
	{
		Title:    "DNA Structure",
		Fact:     "DNA has a double helix structure, like a twisted ladder, discovered by Watson, Crick, Franklin, and Wilkins.",
		Category: "structure",
	},
	{
		Title:    "Base Pairing",
		Fact:     "Adenine always pairs with Thymine (2 H-bonds), and Guanine always pairs with Cytosine (3 H-bonds).",
		Category: "bonding",
	},
	{
		Title:    "Human DNA",
		Fact:     "Human DNA contains about 3 billion base pairs and would stretch about 2 meters if unwound from a single cell.",
		Category: "biology",
	},
	{
		Title:    "Genetic Code",
		Fact:     "The sequence of DNA bases determines the genetic instructions for all living organisms.",
		Category: "genetics",
	},
}

var molecularComponents = map[string]types.Component{
	"sugar_phosphate_backbone": {
		Description: "The structural framework of DNA, alternating sugar (deoxyribose) and phosphate groups",
		Function:    "Provides structural stability and protection for the bases",
	},
	"nitrogenous_bases": {
		Description: "Four types of bases (A, T, G, C) that carry genetic information",
		Function:    "Store genetic information through their sequence",
	},
	"hydrogen_bonds": {
		Description: "Weak bonds between complementary base pairs",
		Function:    "Hold the two DNA strands together while allowing separation during replication",
	},
	"major_minor_grooves": {
		Description: "Spiral grooves in the DNA double helix",
		Function:    "Provide binding sites for proteins that regulate gene expression",
	},
}
