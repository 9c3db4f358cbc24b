package models

type (
	// BranchCandidate es una branch elegible como base. Efímera: se
	// reconstruye en cada corrida a partir del estado de git.
	BranchCandidate struct {
		Name      string
		IsDefault bool
		IsRecent  bool
		IsRemote  bool
	}

	// FileSummary es el bloque por archivo que entra al prompt
	FileSummary struct {
		Path     string
		Scope    string
		Subjects []string
		Diff     string
	}

	// RangeSummary agrupa todo lo que se le manda al modelo para un rango
	RangeSummary struct {
		Range       string
		Title       string // subject del commit más reciente, usado como pseudo título de PR
		Subjects    []string
		Files       []FileSummary
		CompareURL  string
		PRReference string // "#123" si se detectó un PR en los subjects
	}
)
