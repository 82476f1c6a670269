package handlers

import (
	"context"
	"net/http"
	"time"

	"io"

	appContext "github.com/celerysoft/scholar-tool-manager/internal/app/context"
	appErrors "github.com/celerysoft/scholar-tool-manager/internal/app/errors"
	"github.com/celerysoft/scholar-tool-manager/internal/app/service"
)

const errMsgEnableReadBody = "Unable to read body"

type (
	UserHandler struct {
		userService    service.UserService
		tokenService   service.TokenService
		contextTimeout time.Duration
	}
	//easyjson:json
	UserLoginDto struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	//easyjson:json
	UserRegisterDto struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
)

func NewUserHandler(userService service.UserService, tokenService service.TokenService, contextTimeoutSec int) *UserHandler {
	return &UserHandler{
		userService:    userService,
		tokenService:   tokenService,
		contextTimeout: time.Duration(contextTimeoutSec) * time.Second,
	}
}

// Register godoc
// @Summary User registration
// @Description Registration is carried out using an email/password pair. Each email must be unique.
// After successful registration the user's payment account is opened and automatic authentication occurs.
// @Tags user
// @Accept json
// @Produce json
// @Param user body UserRegisterDto true "User Registration Information"
// @Success 200 {string} string "Bearer <token>"
// @Failure 400 {object} ErrorResponse "Bad Request"
// @Failure 409 {object} ErrorResponse "Conflict - email already registered"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /api/user/register [post]
func (uh *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), uh.contextTimeout)
	defer cancel()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		PrepareError(w, appErrors.NewWithCode(err, errMsgEnableReadBody, http.StatusBadRequest))
		return
	}
	request := UserRegisterDto{}
	if err = request.UnmarshalJSON(body); err != nil {
		PrepareError(w, appErrors.NewWithCode(err, "Unable to parse body", http.StatusBadRequest))
		return
	}
	if request.Email == "" || request.Password == "" {
		PrepareError(w, appErrors.NewInvalidRequest("Email and password are required"))
		return
	}

	user, err := uh.userService.Create(ctx, request.Email, request.Password)
	if err != nil {
		PrepareError(w, err)
		return
	}
	token, err := uh.tokenService.GenerateToken(user.Email)
	if err != nil {
		PrepareError(w, err)
		return
	}

	if err = appContext.GetContextError(ctx); err != nil {
		PrepareError(w, err)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	w.WriteHeader(http.StatusOK)
}

// Login godoc
// @Summary User authentication
// @Tags user
// @Accept json
// @Produce json
// @Param user body UserLoginDto true "User Login Information"
// @Success 200 {string} string "Bearer <token>"
// @Failure 400 {object} ErrorResponse "Bad Request"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /api/user/login [post]
func (uh *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), uh.contextTimeout)
	defer cancel()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		PrepareError(w, appErrors.NewWithCode(err, errMsgEnableReadBody, http.StatusBadRequest))
		return
	}
	request := UserLoginDto{}
	if err = request.UnmarshalJSON(body); err != nil {
		PrepareError(w, appErrors.NewWithCode(err, "Unable to parse body", http.StatusBadRequest))
		return
	}

	user, err := uh.userService.Authenticate(ctx, request.Email, request.Password)
	if err != nil {
		PrepareError(w, err)
		return
	}
	token, err := uh.tokenService.GenerateToken(user.Email)
	if err != nil {
		PrepareError(w, err)
		return
	}

	if err = appContext.GetContextError(ctx); err != nil {
		PrepareError(w, err)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	w.WriteHeader(http.StatusOK)
}
