package biome

// DefaultGrid returns the Beta 1.7.3 overworld temperature/rainfall
// biome table: 12 biomes with their exact legacy surface block IDs.
func DefaultGrid() *Grid {
	sandstone := Followup{Block: 24 * 16, MaxDepth: 3}

	plains := Biome{Surface: Surface{Top: 35*16 + 8, Fill: 3 * 16}, ID: '8', Name: "Plains"}
	tundra := Biome{Surface: Surface{Top: 35*16 + 1, Fill: 3 * 16}, ID: 'A', Name: "Tundra"}
	forest := Biome{Surface: Surface{Top: 35*16 + 6, Fill: 3 * 16}, ID: '3', Name: "Forest"}

	grid := NewGrid(plains.Clone())

	grid.Add([2]float64{0.00, 0.10}, [2]float64{0.00, 1.00}, tundra.Clone())
	grid.Add([2]float64{0.10, 0.50}, [2]float64{0.00, 0.20}, tundra.Clone())
	grid.Add([2]float64{0.10, 0.50}, [2]float64{0.20, 0.50}, Biome{Surface: Surface{Top: 35*16 + 2, Fill: 3 * 16}, ID: '6', Name: "Taiga"})
	grid.Add([2]float64{0.10, 0.70}, [2]float64{0.50, 1.00}, Biome{Surface: Surface{Top: 35*16 + 3, Fill: 3 * 16}, ID: '1', Name: "Swampland"})
	grid.Add([2]float64{0.50, 0.95}, [2]float64{0.00, 0.20}, Biome{Surface: Surface{Top: 2 * 16, Fill: 3 * 16}, ID: '4', Name: "Savanna"})
	grid.Add([2]float64{0.50, 0.97}, [2]float64{0.20, 0.35}, Biome{Surface: Surface{Top: 35*16 + 5, Fill: 3 * 16}, ID: '5', Name: "Shrubland"})
	grid.Add([2]float64{0.50, 0.97}, [2]float64{0.35, 0.50}, forest.Clone())
	grid.Add([2]float64{0.70, 0.97}, [2]float64{0.50, 1.00}, forest.Clone())
	grid.Add([2]float64{0.95, 1.00}, [2]float64{0.00, 0.20}, Biome{Surface: Surface{Top: 35*16 + 7, Fill: 12 * 16, Chain: []Followup{sandstone}}, ID: '7', Name: "Desert"})
	grid.Add([2]float64{0.97, 1.00}, [2]float64{0.20, 0.45}, plains.Clone())
	grid.Add([2]float64{0.97, 1.00}, [2]float64{0.45, 0.90}, Biome{Surface: Surface{Top: 35*16 + 9, Fill: 3 * 16}, ID: '2', Name: "Seasonal Forest"})
	grid.Add([2]float64{0.97, 1.00}, [2]float64{0.90, 1.00}, Biome{Surface: Surface{Top: 35*16 + 10, Fill: 3 * 16}, ID: '0', Name: "Rainforest"})

	return grid
}
