package controller

import (
	"fmt"
	"net/http"

	"bookshop/database"
	"bookshop/logger"
	"bookshop/web/service"

	"github.com/gin-gonic/gin"
)

// CatalogController serves the public, unauthenticated read paths.
type CatalogController struct {
	BaseController

	catalogService service.CatalogService
	reviewService  service.ReviewService
}

// NewCatalogController creates the controller and registers its routes.
func NewCatalogController(g *gin.RouterGroup) *CatalogController {
	a := &CatalogController{}
	a.initRouter(g)
	return a
}

func (a *CatalogController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.allBooks)
	g.GET("/isbn/:isbn", a.bookByIsbn)
	g.GET("/author/:author", a.booksByAuthor)
	g.GET("/title/:title", a.booksByTitle)
	g.GET("/review/:isbn", a.bookReviews)
	g.GET("/ping", a.ping)
}

// allBooks returns the full catalog keyed by ISBN.
func (a *CatalogController) allBooks(c *gin.Context) {
	books, err := a.catalogService.AllBooks()
	if database.IsNotFound(err) {
		jsonMsg(c, http.StatusNotFound, "No books available in the shop.")
		return
	}
	if err != nil {
		logger.Warning("list books err:", err)
		jsonMsg(c, http.StatusInternalServerError, "An error occurred while retrieving books.")
		return
	}
	prettyObj(c, books)
}

func (a *CatalogController) bookByIsbn(c *gin.Context) {
	isbn := c.Param("isbn")

	book, err := a.catalogService.GetByISBN(isbn)
	if database.IsNotFound(err) {
		jsonMsg(c, http.StatusNotFound, fmt.Sprintf("Book with ISBN %s not found.", isbn))
		return
	}
	if err != nil {
		logger.Warning("get book err:", err)
		jsonMsg(c, http.StatusInternalServerError, "An error occurred while retrieving the book details.")
		return
	}
	prettyObj(c, book)
}

func (a *CatalogController) booksByAuthor(c *gin.Context) {
	author := c.Param("author")

	books, err := a.catalogService.FindByAuthor(author)
	if database.IsNotFound(err) {
		jsonMsg(c, http.StatusNotFound, fmt.Sprintf("No books found by author %s.", author))
		return
	}
	if err != nil {
		logger.Warning("find books by author err:", err)
		jsonMsg(c, http.StatusInternalServerError, "An error occurred while retrieving the books.")
		return
	}
	prettyObj(c, books)
}

func (a *CatalogController) booksByTitle(c *gin.Context) {
	title := c.Param("title")

	books, err := a.catalogService.FindByTitle(title)
	if database.IsNotFound(err) {
		jsonMsg(c, http.StatusNotFound, fmt.Sprintf("No books found with title %q.", title))
		return
	}
	if err != nil {
		logger.Warning("find books by title err:", err)
		jsonMsg(c, http.StatusInternalServerError, "An error occurred while retrieving the books.")
		return
	}
	prettyObj(c, books)
}

func (a *CatalogController) bookReviews(c *gin.Context) {
	isbn := c.Param("isbn")

	reviews, err := a.reviewService.Reviews(isbn)
	if database.IsNotFound(err) {
		jsonMsg(c, http.StatusNotFound, fmt.Sprintf("Book with ISBN %s not found.", isbn))
		return
	}
	if err == service.ErrNoReviews {
		jsonMsg(c, http.StatusNotFound, fmt.Sprintf("No reviews available for book with ISBN %s.", isbn))
		return
	}
	if err != nil {
		logger.Warning("get reviews err:", err)
		jsonMsg(c, http.StatusInternalServerError, "An error occurred while retrieving the reviews.")
		return
	}
	prettyObj(c, reviews)
}

func (a *CatalogController) ping(c *gin.Context) {
	jsonMsg(c, http.StatusOK, "pong")
}
