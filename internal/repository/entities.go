package repository

// The descriptor table: one row per entity kind. Messages and envelope keys
// match the API's response wording; expansions mirror what each read embeds.

var Countries = Descriptor{
	Collection: "countries",
	Key:        "country", KeyPlural: "countries",
	Name: "Country", NamePlural: "Countries",
}

var States = Descriptor{
	Collection: "states",
	Key:        "state", KeyPlural: "states",
	Name: "State", NamePlural: "States",
	ForeignKeys: []ForeignKey{
		{Field: "countryId", Collection: "countries", Message: "Country not found"},
	},
	Expansions: []Expansion{
		{Field: "countryId", Collection: "countries", Key: "country"},
	},
}

var Municipalities = Descriptor{
	Collection: "municipalities",
	Key:        "municipality", KeyPlural: "municipalities",
	Name: "Municipality", NamePlural: "Municipalities",
	ForeignKeys: []ForeignKey{
		{Field: "stateId", Collection: "states", Message: "State not found"},
	},
	Expansions: []Expansion{
		{Field: "stateId", Collection: "states", Key: "state", Nested: []Expansion{
			{Field: "countryId", Collection: "countries", Key: "country"},
		}},
	},
}

var Cities = Descriptor{
	Collection: "cities",
	Key:        "city", KeyPlural: "cities",
	Name: "City", NamePlural: "Cities",
	ForeignKeys: []ForeignKey{
		{Field: "municipalityId", Collection: "municipalities", Message: "Municipality not found"},
	},
	Expansions: []Expansion{
		{Field: "municipalityId", Collection: "municipalities", Key: "municipality", Nested: []Expansion{
			{Field: "stateId", Collection: "states", Key: "state"},
		}},
	},
}

var Colonies = Descriptor{
	Collection: "colonies",
	Key:        "colony", KeyPlural: "colonies",
	Name: "Colony", NamePlural: "Colonies",
	ForeignKeys: []ForeignKey{
		{Field: "municipalityId", Collection: "municipalities", Message: "Municipality not found"},
	},
	Expansions: []Expansion{
		{Field: "municipalityId", Collection: "municipalities", Key: "municipality"},
	},
}

var Roads = Descriptor{
	Collection: "roads",
	Key:        "road", KeyPlural: "roads",
	Name: "Road", NamePlural: "Roads",
	ForeignKeys: []ForeignKey{
		{Field: "colonyId", Collection: "colonies", Message: "Colony not found"},
	},
	Expansions: []Expansion{
		{Field: "colonyId", Collection: "colonies", Key: "colony"},
	},
}

var Branches = Descriptor{
	Collection: "branches",
	Key:        "branch", KeyPlural: "branches",
	Name: "Branch", NamePlural: "Branches",
	ForeignKeys: []ForeignKey{
		{Field: "cityId", Collection: "cities", Message: "City not found"},
		{Field: "colonyId", Collection: "colonies", Message: "Colony not found"},
		{Field: "roadId", Collection: "roads", Message: "Road not found"},
	},
	Expansions: []Expansion{
		{Field: "cityId", Collection: "cities", Key: "city", Nested: []Expansion{
			{Field: "municipalityId", Collection: "municipalities", Key: "municipality", Nested: []Expansion{
				{Field: "stateId", Collection: "states", Key: "state", Nested: []Expansion{
					{Field: "countryId", Collection: "countries", Key: "country"},
				}},
			}},
		}},
		{Field: "vehiclesId", Collection: "vehicles", Key: "vehicles", Many: true, Nested: []Expansion{
			{Field: "versionId", Collection: "versions", Key: "version", Nested: []Expansion{
				{Field: "modelId", Collection: "models", Key: "model"},
			}},
		}},
	},
}

var BranchSections = Descriptor{
	Collection: "branchSections",
	Key:        "branchSection", KeyPlural: "branchSections",
	Name: "Branch section", NamePlural: "Branch sections",
	ForeignKeys: []ForeignKey{
		{Field: "branchId", Collection: "branches", Message: "Branch not found"},
	},
	Expansions: []Expansion{
		{Field: "branchId", Collection: "branches", Key: "branch"},
	},
}

var Brands = Descriptor{
	Collection: "brands",
	Key:        "brand", KeyPlural: "brands",
	Name: "Brand", NamePlural: "Brands",
}

var SubBrands = Descriptor{
	Collection: "subBrands",
	Key:        "subBrand", KeyPlural: "subBrands",
	Name: "Sub brand", NamePlural: "Sub brands",
	ForeignKeys: []ForeignKey{
		{Field: "brandId", Collection: "brands", Message: "Brand not found"},
	},
	Expansions: []Expansion{
		{Field: "brandId", Collection: "brands", Key: "brand"},
	},
}

var Models = Descriptor{
	Collection: "models",
	Key:        "model", KeyPlural: "models",
	Name: "Model", NamePlural: "Models",
	ForeignKeys: []ForeignKey{
		{Field: "brandId", Collection: "brands", Message: "Brand not found"},
	},
	Expansions: []Expansion{
		{Field: "brandId", Collection: "brands", Key: "brand"},
	},
}

var Versions = Descriptor{
	Collection: "versions",
	Key:        "version", KeyPlural: "versions",
	Name: "Version", NamePlural: "Versions",
	ForeignKeys: []ForeignKey{
		{Field: "modelId", Collection: "models", Message: "Model not found"},
	},
	Expansions: []Expansion{
		{Field: "modelId", Collection: "models", Key: "model", Nested: []Expansion{
			{Field: "brandId", Collection: "brands", Key: "brand"},
		}},
	},
}

var Vehicles = Descriptor{
	Collection: "vehicles",
	Key:        "vehicle", KeyPlural: "vehicles",
	Name: "Vehicle", NamePlural: "Vehicles",
	ForeignKeys: []ForeignKey{
		{Field: "versionId", Collection: "versions", Message: "Version not found"},
	},
	Expansions: []Expansion{
		{Field: "versionId", Collection: "versions", Key: "version", Nested: []Expansion{
			{Field: "modelId", Collection: "models", Key: "model"},
		}},
	},
}

var CustomRegistrations = Descriptor{
	Collection: "customRegistrations",
	Key:        "customRegistration", KeyPlural: "customRegistrations",
	Name: "Custom registration", NamePlural: "Custom registrations",
	ForeignKeys: []ForeignKey{
		{Field: "vehicleId", Collection: "vehicles", Message: "Vehicle not found"},
	},
	Expansions: []Expansion{
		{Field: "vehicleId", Collection: "vehicles", Key: "vehicle"},
	},
}

var InsuranceRegistrations = Descriptor{
	Collection: "insuranceRegistrations",
	Key:        "insuranceRegistration", KeyPlural: "insuranceRegistrations",
	Name: "Insurance registration", NamePlural: "Insurance registrations",
	ForeignKeys: []ForeignKey{
		{Field: "vehicleId", Collection: "vehicles", Message: "Vehicle not found"},
	},
	Expansions: []Expansion{
		{Field: "vehicleId", Collection: "vehicles", Key: "vehicle"},
	},
}

var Verifications = Descriptor{
	Collection: "verifications",
	Key:        "verification", KeyPlural: "verifications",
	Name: "Verification", NamePlural: "Verifications",
	ForeignKeys: []ForeignKey{
		{Field: "vehicleId", Collection: "vehicles", Message: "Vehicle not found"},
	},
	Expansions: []Expansion{
		{Field: "vehicleId", Collection: "vehicles", Key: "vehicle"},
	},
}

var BranchRegistrations = Descriptor{
	Collection: "branchRegistrations",
	Key:        "branchRegistration", KeyPlural: "branchRegistrations",
	Name: "Branch registration", NamePlural: "Branch registrations",
	ForeignKeys: []ForeignKey{
		{Field: "branchSectionId", Collection: "branchSections", Message: "Branch section not found"},
		{Field: "vehicleId", Collection: "vehicles", Message: "Vehicle not found"},
		{Field: "userId", Collection: "users", Message: "User not found"},
	},
	Expansions: []Expansion{
		{Field: "branchSectionId", Collection: "branchSections", Key: "branchSection", Nested: []Expansion{
			{Field: "branchId", Collection: "branches", Key: "branch"},
		}},
		{Field: "vehicleId", Collection: "vehicles", Key: "vehicle"},
		{Field: "userId", Collection: "users", Key: "user", Hidden: []string{"password"}},
	},
}

var Users = Descriptor{
	Collection: "users",
	Key:        "user", KeyPlural: "users",
	Name: "User", NamePlural: "Users",
	Hidden: []string{"password"},
}
