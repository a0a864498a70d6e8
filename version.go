package bauble

// Version is the bauble release tag. BuildDate may be stamped at link time
// via -ldflags "-X github.com/AbooMinister25/bauble.BuildDate=...".
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
)
