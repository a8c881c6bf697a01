package crt

// ProbeSequenceExhausted - Custom error to inform that a probe sequence visited the maximum number of
// slots without finding a free one, hence the key could not be placed for that technique.
type ProbeSequenceExhausted struct {
	msg string
}

// Error - Used to notify that the probe sequence was exhausted
func (E ProbeSequenceExhausted) Error() string {
	if E.msg == "" {
		return "probe sequence exhausted"
	}
	return E.msg
}
