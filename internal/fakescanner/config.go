package fakescanner

// Config holds configuration for the fake device.
type Config struct {
	// Port is the port on which the fake device listens (Start only).
	Port int

	// Identity reported in the capability document.
	Version      string
	MakeAndModel string
	SerialNumber string

	// Advertised scan area in 1/300ths of an inch.
	MaxWidth  int
	MaxHeight int

	// Resolutions supported on both axes.
	Resolutions []int

	// PollsUntilDone is how many status reads a job spends processing
	// before completing.
	PollsUntilDone int

	// RejectJobs makes job creation fail with 503.
	RejectJobs bool

	// AbortJobs reports every job as Aborted.
	AbortJobs bool

	// Document served from NextDocument, with its content type.
	Document     []byte
	DocumentType string
}

func (c *Config) applyDefaults() {
	if c.Port == 0 {
		c.Port = 8089
	}
	if c.Version == "" {
		c.Version = "2.6"
	}
	if c.MakeAndModel == "" {
		c.MakeAndModel = "Fake eSCL Scanner 3000"
	}
	if c.SerialNumber == "" {
		c.SerialNumber = "FAKE-0001"
	}
	if c.MaxWidth == 0 {
		c.MaxWidth = 2550
	}
	if c.MaxHeight == 0 {
		c.MaxHeight = 3508
	}
	if len(c.Resolutions) == 0 {
		c.Resolutions = []int{75, 150, 300, 600}
	}
	if c.PollsUntilDone == 0 {
		c.PollsUntilDone = 2
	}
	if len(c.Document) == 0 {
		// Minimal JPEG header so the payload looks like an image.
		c.Document = []byte{0xFF, 0xD8, 0xFF, 0xE0, 'f', 'a', 'k', 'e', 0xFF, 0xD9}
	}
	if c.DocumentType == "" {
		c.DocumentType = "image/jpeg"
	}
}
