// Package importers brings notes taken elsewhere into the library.
//
// # Architecture
//
//	My Clippings.txt → kindle.Parser → []kindle.Book → Pipeline → BookStore / NoteStore
//
// The pipeline finds each book by exact title and author, creating it when
// missing, and adds every note whose external id the book does not hold
// yet. Running the same import twice therefore adds nothing the second
// time.
//
// # Usage
//
//	pipeline := importers.NewPipeline(booksRepo, notesRepo)
//	result, err := pipeline.ImportKindle(file)
//	fmt.Printf("%d new notes\n", result.NotesImported)
package importers
