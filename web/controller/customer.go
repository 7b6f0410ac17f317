package controller

import (
	"fmt"
	"net/http"

	"bookshop/database"
	"bookshop/logger"
	"bookshop/web/entity"
	"bookshop/web/middleware"
	"bookshop/web/service"
	"bookshop/web/session"

	"github.com/gin-gonic/gin"
)

// CredentialsForm is the request body for registration and login.
type CredentialsForm struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// CustomerController handles registration, login and review mutations.
type CustomerController struct {
	BaseController

	userService   service.UserService
	tokenService  service.TokenService
	reviewService service.ReviewService
}

// NewCustomerController creates the controller and registers its routes.
// Registration lives at the root; everything else is grouped under
// /customer, with review mutations behind the bearer-token gate.
func NewCustomerController(g *gin.RouterGroup) *CustomerController {
	a := &CustomerController{}
	a.initRouter(g)
	return a
}

func (a *CustomerController) initRouter(g *gin.RouterGroup) {
	g.POST("/register", a.register)

	customer := g.Group("/customer")
	customer.POST("/login", a.login)
	customer.GET("/logout", a.logout)

	auth := customer.Group("/auth")
	auth.Use(middleware.TokenGate())
	auth.PUT("/review/:isbn", a.upsertReview)
	auth.DELETE("/review/:isbn", a.deleteReview)
}

// register creates a new customer account.
func (a *CustomerController) register(c *gin.Context) {
	var form CredentialsForm

	if err := c.ShouldBind(&form); err != nil || form.Username == "" || form.Password == "" {
		jsonMsg(c, http.StatusBadRequest, "Username and password are required.")
		return
	}

	err := a.userService.Register(form.Username, form.Password)
	if err == service.ErrUsernameTaken {
		jsonMsg(c, http.StatusConflict, fmt.Sprintf("Username %q is already taken.", form.Username))
		return
	}
	if err != nil {
		logger.Warning("register err:", err)
		jsonMsg(c, http.StatusInternalServerError, "An error occurred while registering the user.")
		return
	}

	logger.Infof("%s registered, IP: %s", form.Username, getRemoteIp(c))
	jsonMsg(c, http.StatusCreated, fmt.Sprintf("User %q successfully registered.", form.Username))
}

// login checks the credentials, mints a bearer token and establishes the
// cookie session. The token is returned in the body as well.
func (a *CustomerController) login(c *gin.Context) {
	var form CredentialsForm

	if err := c.ShouldBind(&form); err != nil || form.Username == "" || form.Password == "" {
		jsonMsg(c, http.StatusBadRequest, "Username and password are required.")
		return
	}

	user := a.userService.CheckUser(form.Username, form.Password)
	if user == nil {
		logger.Warningf("failed login for %q, IP: %s", form.Username, getRemoteIp(c))
		jsonMsg(c, http.StatusUnauthorized, "Invalid username or password.")
		return
	}

	token, err := a.tokenService.Generate(user.Username)
	if err != nil {
		logger.Warning("generate token err:", err)
		jsonMsg(c, http.StatusInternalServerError, "An error occurred while logging in.")
		return
	}

	if err := session.SetLoginUser(c, &session.LoginSession{Token: token, Username: user.Username}); err != nil {
		logger.Warning("save session err:", err)
		jsonMsg(c, http.StatusInternalServerError, "An error occurred while logging in.")
		return
	}

	logger.Infof("%s logged in successfully, IP: %s", user.Username, getRemoteIp(c))
	c.JSON(http.StatusOK, entity.LoginResult{
		Message: fmt.Sprintf("User %q successfully logged in.", user.Username),
		Token:   token,
	})
}

// logout tears down the cookie session.
func (a *CustomerController) logout(c *gin.Context) {
	if login := session.GetLoginUser(c); login != nil {
		logger.Infof("%s logged out", login.Username)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("clear session err:", err)
	}
	jsonMsg(c, http.StatusOK, "User successfully logged out.")
}

// upsertReview adds or overwrites the caller's review of a book. The review
// key is always the resolved identity's own username.
func (a *CustomerController) upsertReview(c *gin.Context) {
	isbn := c.Param("isbn")

	identity := a.identity(c)
	if identity == nil {
		jsonMsg(c, http.StatusUnauthorized, "User is not logged in.")
		return
	}

	review := c.Query("review")
	if review == "" {
		jsonMsg(c, http.StatusBadRequest, "Review content is required.")
		return
	}

	reviews, err := a.reviewService.Upsert(isbn, identity.Username, review)
	if database.IsNotFound(err) {
		jsonMsg(c, http.StatusNotFound, fmt.Sprintf("Book with ISBN %s not found.", isbn))
		return
	}
	if err != nil {
		logger.Warning("upsert review err:", err)
		jsonMsg(c, http.StatusInternalServerError, "An error occurred while adding the review.")
		return
	}

	c.JSON(http.StatusOK, entity.ReviewsResult{
		Message: fmt.Sprintf("Review for book with ISBN %s has been added/updated.", isbn),
		Isbn:    isbn,
		Reviews: reviews,
	})
}

// deleteReview removes the caller's own review of a book.
func (a *CustomerController) deleteReview(c *gin.Context) {
	isbn := c.Param("isbn")

	identity := a.identity(c)
	if identity == nil {
		jsonMsg(c, http.StatusUnauthorized, "User is not logged in.")
		return
	}

	reviews, err := a.reviewService.Delete(isbn, identity.Username)
	if database.IsNotFound(err) {
		jsonMsg(c, http.StatusNotFound, fmt.Sprintf("Book with ISBN %s not found.", isbn))
		return
	}
	if err == service.ErrReviewNotFound {
		jsonMsg(c, http.StatusNotFound, fmt.Sprintf("No review found for ISBN %s by user %q.", isbn, identity.Username))
		return
	}
	if err != nil {
		logger.Warning("delete review err:", err)
		jsonMsg(c, http.StatusInternalServerError, "An error occurred while deleting the review.")
		return
	}

	c.JSON(http.StatusOK, entity.ReviewsResult{
		Message: fmt.Sprintf("Review for ISBN %s by user %q has been deleted.", isbn, identity.Username),
		Isbn:    isbn,
		Reviews: reviews,
	})
}
