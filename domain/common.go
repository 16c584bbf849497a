package domain

var (
	MessageFailedBodyRequest = "failed to parse request body"
	MessagePong              = "pong"
)

// StringValue dereferences an optional request field. Required string fields
// are pointers so that validation rejects only absent values and keeps "".
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
