package monkey

// Set at build time via -ldflags "-X ...".
var (
	Version   = "0.3.0"
	BuildDate = "unknown"
)
