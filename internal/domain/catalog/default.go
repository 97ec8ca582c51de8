package catalog

// Default devuelve el calendario nacional de inmunización.
// Devuelve una copia nueva en cada llamada.
func Default() Catalog {
	out := make(Catalog, len(nationalSchedule))
	copy(out, nationalSchedule)
	return out
}

var nationalSchedule = Catalog{
	// Nacimiento
	{Name: "BCG", OffsetDays: 0, MinGapDays: 0, Info: "Protects against tuberculosis."},
	{Name: "Hepatitis B - Birth Dose", OffsetDays: 0, MinGapDays: 0, Info: "Protects against Hepatitis B virus infection."},
	{Name: "OPV - 0", OffsetDays: 0, MinGapDays: 0, Info: "Protects against Polio virus."},

	// 6 semanas
	{Name: "Pentavalent - 1", OffsetDays: 42, MinGapDays: 28, Info: "Combination vaccine for Diphtheria, Tetanus, Pertussis, Hib, and Hep B."},
	{Name: "OPV - 1", OffsetDays: 42, MinGapDays: 28, Info: "First dose of oral polio vaccine."},
	{Name: "Rotavirus - 1", OffsetDays: 42, MinGapDays: 28, Info: "Protects against rotavirus infections, a common cause of diarrhea."},
	{Name: "PCV - 1", OffsetDays: 42, MinGapDays: 28, Info: "Protects against pneumococcal disease."},

	// 10 semanas
	{Name: "Pentavalent - 2", OffsetDays: 70, MinGapDays: 28, Info: "Second dose of Pentavalent."},
	{Name: "OPV - 2", OffsetDays: 70, MinGapDays: 28, Info: "Second dose of oral polio vaccine."},
	{Name: "Rotavirus - 2", OffsetDays: 70, MinGapDays: 28, Info: "Second dose of rotavirus vaccine."},

	// 14 semanas
	{Name: "Pentavalent - 3", OffsetDays: 98, MinGapDays: 0, Info: "Third dose of Pentavalent."},
	{Name: "OPV - 3", OffsetDays: 98, MinGapDays: 0, Info: "Third dose of oral polio vaccine."},
	{Name: "Rotavirus - 3", OffsetDays: 98, MinGapDays: 0, Info: "Third dose of rotavirus vaccine."},
	{Name: "PCV - Booster 1", OffsetDays: 98, MinGapDays: 0, Info: "First booster for pneumococcal vaccine."},

	// 9 meses
	{Name: "MMR - 1", OffsetDays: 270, MinGapDays: 0, Info: "Protects against Measles, Mumps, and Rubella."},
	{Name: "Vitamin A - 1", OffsetDays: 270, MinGapDays: 0, Info: "First dose of Vitamin A supplement."},

	// 16 meses
	{Name: "DPT - Booster 1", OffsetDays: 480, MinGapDays: 0, Info: "Booster for Diphtheria, Pertussis, and Tetanus."},
	{Name: "OPV - Booster", OffsetDays: 480, MinGapDays: 0, Info: "Booster dose for Polio."},
	{Name: "MMR - 2", OffsetDays: 480, MinGapDays: 0, Info: "Second dose for Measles, Mumps, and Rubella."},
	{Name: "Vitamin A - 2", OffsetDays: 480, MinGapDays: 180, Info: "Second dose of Vitamin A, then every 6 months."},

	// 10 años
	{Name: "Td-TT", OffsetDays: 3650, MinGapDays: 0, Info: "Tetanus and adult Diphtheria booster (10 years)."},
}
