package entities

// Module is one entry of the working copy's .gitmodules configuration.
type Module struct {
	Name string
	Path string
	URL  string
}
