package cfg

type Cfg struct {
	// Input configuration
	PartnersDir     string
	CategoryMapFile string

	// Output configuration
	OutDir           string
	PageSize         int
	CategoryPageSize int
	DealsPageSize    int
	DealsMinDiscount int

	// Search index configuration
	SearchAddr      string
	SearchAPIKey    string
	SearchIndex     string
	SearchBatchSize int

	// Application configuration
	DBFile          string
	Port            string
	WorkerCount     int
	RebuildInterval int
	Serve           bool

	// Application metadata
	UserAgent string
	Debug     bool
	Version   string
}
