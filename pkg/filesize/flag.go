package filesize

import "encoding/json"

// Set parses s into the receiver so that *Filesize can be used as a
// command-line flag value.
func (f *Filesize) Set(s string) error {
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Type names the flag value type.
func (f *Filesize) Type() string {
	return "filesize"
}

// MarshalJSON encodes the exact byte count as a JSON number.
func (f Filesize) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.bytes)
}

// UnmarshalJSON accepts either a JSON string in the usual size grammar
// or a plain JSON number of bytes.
func (f *Filesize) UnmarshalJSON(in []byte) error {
	var s string
	if err := json.Unmarshal(in, &s); err == nil {
		return f.Set(s)
	}
	var n int64
	if err := json.Unmarshal(in, &n); err != nil {
		return err
	}
	*f = New(n)
	return nil
}
