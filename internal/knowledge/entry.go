package knowledge

// Entry is one fact in the static corpus. Searches may also synthesize one
// Entry per query when the corpus comes up short; those carry the current
// date and the fallback source label.
type Entry struct {
	Topic   string
	Source  string
	Content string
	URL     string
	Date    string
}
