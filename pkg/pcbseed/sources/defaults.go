package sources

// Atomberg is the built-in schema for the Atomberg consumption workbook.
func Atomberg() Schema {
	return Schema{
		Name: "atomberg",
		Summaries: []SummarySheet{
			{Sheet: "Component Consumption", NameColumn: "B", CountColumn: "C"},
		},
		Details: []DetailSheet{
			{
				Sheet:            "PCB-Serial-No",
				PCBColumn:        "D",
				ComponentColumns: []string{"F", "E"},
				DateColumn:       "C",
			},
		},
	}
}

// Bajaj is the built-in schema for the Bajaj workbook, whose production
// batches live in sheets named by number.
func Bajaj() Schema {
	return Schema{
		Name: "bajaj",
		Summaries: []SummarySheet{
			{Sheet: "Master_Summary", NameColumn: "B", CountColumn: "D"},
		},
		Details: []DetailSheet{
			{
				Pattern:          `\d+`,
				Exclude:          []string{"Master_Summary", "Dashboard", "Pivot"},
				PCBColumn:        "J",
				ComponentColumns: []string{"U"},
				DateColumn:       "N",
				PCBFromSheetName: true,
			},
		},
	}
}

// Builtin returns the built-in schema with the given name.
func Builtin(name string) (Schema, bool) {
	switch name {
	case "atomberg":
		return Atomberg(), true
	case "bajaj":
		return Bajaj(), true
	}
	return Schema{}, false
}
