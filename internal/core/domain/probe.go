package domain

// Reachability is the outcome of probing a hyperlink target.
// Network-layer failures fold into Unreachable rather than propagating
// as errors: the probe is a yes/no question.
type Reachability struct {
	// URI is the probed target after resolution.
	URI string

	// Reachable is true when the target could be opened.
	Reachable bool

	// Reason describes why the target was unreachable. Empty when
	// Reachable is true.
	Reason string
}

// Reachable constructs a successful probe result.
func Reachable(uri string) Reachability {
	return Reachability{URI: uri, Reachable: true}
}

// Unreachable constructs a failed probe result.
func Unreachable(uri, reason string) Reachability {
	return Reachability{URI: uri, Reason: reason}
}
