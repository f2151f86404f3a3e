package entity

// Book is a shelf entry. Title, author and rating are all optional and
// stored as NULL when absent; the id is assigned by the database.
type Book struct {
	ID     int64   `json:"id"`
	Title  *string `json:"title"`
	Author *string `json:"author"`
	Rating *int    `json:"rating"`
}
