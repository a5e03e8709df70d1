package store

// Store defines persistence for the channel tables the pipeline emits.
type Store interface {
	// WriteCSV writes header plus rows to filename, replacing any existing file.
	WriteCSV(filename string, header []string, rows [][]string) error
}
