package model

// geditTree returns a small accessibility tree shaped like a gedit session.
func geditTree() []Element {
	return []Element{
		{
			Name:   "Untitled Document 1 - gedit",
			Role:   "frame",
			Bounds: [4]int{0, 0, 800, 600},
			Children: []Element{
				{Role: "menu bar", Children: []Element{
					{Name: "File", Role: "menu", Children: []Element{
						{Name: "Open...", Role: "menu item", Bounds: [4]int{10, 40, 100, 20}},
						{Name: "Save", Role: "menu item", Bounds: [4]int{10, 60, 100, 20}},
					}},
				}},
				{Name: "Open", Role: "push button", Bounds: [4]int{5, 5, 10, 20}},
				{Role: "push button", Bounds: [4]int{20, 5, 10, 20}},
				{Role: "push button", Bounds: [4]int{40, 5, 10, 20}},
				{Name: "OK", Role: "push button", Bounds: [4]int{700, 550, 40, 20}},
				{Name: "OK", Role: "push button", Bounds: [4]int{750, 550, 40, 20}},
				{Role: "text", Bounds: [4]int{0, 100, 800, 400}},
			},
		},
		{
			Name:   "Save As",
			Role:   "dialog",
			Bounds: [4]int{200, 150, 400, 300},
			Children: []Element{
				{Name: "Name:", Role: "label"},
				{Name: "Cancel", Role: "push button"},
			},
		},
	}
}
