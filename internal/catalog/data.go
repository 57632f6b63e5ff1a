package catalog

var cars = []Car{
	{ID: "1", Brand: "Toyota", Model: "Camry", Year: 2025, Price: 28400, Type: TypeSedan, Engine: "2.5L 4-Cylinder Hybrid", Horsepower: 225, Transmission: "eCVT", FuelType: "Hybrid", Featured: true},
	{ID: "2", Brand: "Toyota", Model: "RAV4", Year: 2025, Price: 29575, Type: TypeSUV, Engine: "2.5L 4-Cylinder", Horsepower: 203, Transmission: "8-Speed Automatic", FuelType: "Gasoline"},
	{ID: "3", Brand: "Toyota", Model: "Corolla", Year: 2025, Price: 22050, Type: TypeSedan, Engine: "2.0L 4-Cylinder", Horsepower: 169, Transmission: "CVT", FuelType: "Gasoline"},
	{ID: "4", Brand: "Toyota", Model: "Highlander", Year: 2025, Price: 38520, Type: TypeSUV, Engine: "2.4L Turbo 4-Cylinder", Horsepower: 265, Transmission: "8-Speed Automatic", FuelType: "Gasoline"},
	{ID: "5", Brand: "Toyota", Model: "Prius", Year: 2025, Price: 28545, Type: TypeSedan, Engine: "2.0L 4-Cylinder Hybrid", Horsepower: 196, Transmission: "eCVT", FuelType: "Hybrid"},
	{ID: "6", Brand: "Toyota", Model: "Tacoma", Year: 2025, Price: 30750, Type: TypeTruck, Engine: "2.4L Turbo 4-Cylinder", Horsepower: 278, Transmission: "8-Speed Automatic", FuelType: "Gasoline"},
	{ID: "7", Brand: "Toyota", Model: "4Runner", Year: 2025, Price: 41515, Type: TypeSUV, Engine: "2.4L Turbo 4-Cylinder", Horsepower: 278, Transmission: "8-Speed Automatic", FuelType: "Gasoline"},
	{ID: "8", Brand: "Toyota", Model: "GR Supra", Year: 2025, Price: 46440, Type: TypeSports, Engine: "2.0L Turbo 4-Cylinder", Horsepower: 255, Transmission: "8-Speed Automatic", FuelType: "Gasoline"},
	{ID: "9", Brand: "Toyota", Model: "Tundra", Year: 2025, Price: 40790, Type: TypeTruck, Engine: "3.4L Twin-Turbo V6", Horsepower: 389, Transmission: "10-Speed Automatic", FuelType: "Gasoline"},
	{ID: "10", Brand: "Toyota", Model: "bZ4X", Year: 2025, Price: 42000, Type: TypeElectric, Engine: "Dual Motor AWD", Horsepower: 214, Transmission: "Single-Speed", FuelType: "Electric"},
	{ID: "11", Brand: "Toyota", Model: "Sienna", Year: 2025, Price: 37155, Type: TypeMinivan, Engine: "2.5L 4-Cylinder Hybrid", Horsepower: 245, Transmission: "eCVT", FuelType: "Hybrid"},
	{ID: "12", Brand: "Toyota", Model: "Crown", Year: 2025, Price: 41045, Type: TypeSedan, Engine: "2.5L 4-Cylinder Hybrid", Horsepower: 236, Transmission: "eCVT", FuelType: "Hybrid"},
	{ID: "13", Brand: "Toyota", Model: "Sequoia Capstone", Year: 2025, Price: 61460, Type: TypeSUV, Engine: "3.4L Twin-Turbo V6 Hybrid", Horsepower: 437, Transmission: "10-Speed Automatic", FuelType: "Hybrid"},
	{ID: "14", Brand: "Toyota", Model: "Land Cruiser", Year: 2025, Price: 65500, Type: TypeSUV, Engine: "2.4L Turbo Hybrid", Horsepower: 326, Transmission: "8-Speed Automatic", FuelType: "Hybrid"},
	{ID: "15", Brand: "Toyota", Model: "GR Supra Premium", Year: 2025, Price: 55850, Type: TypeSports, Engine: "3.0L Turbo Inline-6", Horsepower: 382, Transmission: "6-Speed Manual", FuelType: "Gasoline"},
}

var profiles = []VehicleProfile{
	{CarID: "1", MSRP: 28400, Power: 5, Safety: 9, Efficiency: 8, Comfort: 8, Tech: 7, Quietness: 8, MaintenanceEase: 9, Cargo: 6},
	{CarID: "2", MSRP: 29575, Power: 6, Safety: 8, Efficiency: 7, Comfort: 7, Tech: 7, Quietness: 7, MaintenanceEase: 8, Cargo: 8},
	{CarID: "3", MSRP: 22050, Power: 4, Safety: 8, Efficiency: 9, Comfort: 6, Tech: 6, Quietness: 7, MaintenanceEase: 9, Cargo: 5},
	{CarID: "4", MSRP: 38520, Power: 7, Safety: 9, Efficiency: 6, Comfort: 9, Tech: 8, Quietness: 8, MaintenanceEase: 7, Cargo: 9},
	{CarID: "5", MSRP: 28545, Power: 4, Safety: 8, Efficiency: 10, Comfort: 7, Tech: 7, Quietness: 9, MaintenanceEase: 8, Cargo: 6},
	{CarID: "6", MSRP: 30750, Power: 7, Safety: 7, Efficiency: 5, Comfort: 6, Tech: 6, Quietness: 5, MaintenanceEase: 6, Cargo: 9},
	{CarID: "7", MSRP: 41515, Power: 7, Safety: 7, Efficiency: 5, Comfort: 6, Tech: 6, Quietness: 5, MaintenanceEase: 6, Cargo: 9},
	{CarID: "8", MSRP: 46440, Power: 10, Safety: 7, Efficiency: 4, Comfort: 6, Tech: 8, Quietness: 4, MaintenanceEase: 4, Cargo: 3},
	{CarID: "9", MSRP: 40790, Power: 9, Safety: 8, Efficiency: 4, Comfort: 7, Tech: 8, Quietness: 6, MaintenanceEase: 5, Cargo: 10},
	{CarID: "10", MSRP: 42000, Power: 6, Safety: 8, Efficiency: 9, Comfort: 7, Tech: 9, Quietness: 9, MaintenanceEase: 8, Cargo: 7},
	{CarID: "11", MSRP: 37155, Power: 6, Safety: 9, Efficiency: 7, Comfort: 9, Tech: 8, Quietness: 8, MaintenanceEase: 7, Cargo: 10},
	{CarID: "12", MSRP: 41045, Power: 7, Safety: 8, Efficiency: 7, Comfort: 8, Tech: 8, Quietness: 8, MaintenanceEase: 7, Cargo: 6},
	{CarID: "13", MSRP: 61460, Power: 8, Safety: 9, Efficiency: 4, Comfort: 9, Tech: 8, Quietness: 7, MaintenanceEase: 6, Cargo: 10},
	{CarID: "14", MSRP: 65500, Power: 8, Safety: 9, Efficiency: 5, Comfort: 8, Tech: 9, Quietness: 7, MaintenanceEase: 6, Cargo: 9},
	{CarID: "15", MSRP: 55850, Power: 10, Safety: 8, Efficiency: 4, Comfort: 7, Tech: 9, Quietness: 5, MaintenanceEase: 4, Cargo: 3},
}
