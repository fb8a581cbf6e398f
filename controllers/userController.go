package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"go-food-ordering/database"
	"go-food-ordering/helpers"
	"go-food-ordering/models"
)

var validate = validator.New()

type UserController struct {
	users *database.UserStore
}

func NewUserController(users *database.UserStore) *UserController {
	return &UserController{users: users}
}

func (ctrl *UserController) SignUp() gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := c.BindJSON(&user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&user); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}
		if user.Role == "" {
			user.Role = "customer"
		}

		password := HashPassword(*user.Password)
		user.Password = &password

		user.User_id = primitive.NewObjectID().Hex()
		user.Created_at = time.Now()
		user.Updated_at = user.Created_at

		token, refreshToken, err := helpers.GenerateAllTokens(*user.Email, *user.Name, user.User_id, user.Role)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate tokens"})
			return
		}
		user.Token = &token
		user.Refresh_Token = &refreshToken

		if err := ctrl.users.CreateUser(user); err != nil {
			if errors.Is(err, database.ErrEmailTaken) {
				c.JSON(http.StatusConflict, gin.H{"error": "email already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "user was not created"})
			return
		}

		user.Password = nil
		c.JSON(http.StatusOK, user)
	}
}

func (ctrl *UserController) Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := c.BindJSON(&user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if user.Email == nil || user.Password == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
			return
		}

		foundUser, err := ctrl.users.GetUserByEmail(*user.Email)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "email or password is incorrect"})
			return
		}
		passwordIsValid, msg := VerifyPassword(*user.Password, *foundUser.Password)
		if !passwordIsValid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		token, refreshToken, err := helpers.GenerateAllTokens(*foundUser.Email, *foundUser.Name, foundUser.User_id, foundUser.Role)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate tokens"})
			return
		}
		if err := ctrl.users.UpdateTokens(foundUser.User_id, token, refreshToken); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
			return
		}

		foundUser.Password = nil
		foundUser.Token = &token
		foundUser.Refresh_Token = &refreshToken
		c.JSON(http.StatusOK, foundUser)
	}
}

// Logout is an acknowledgement only: tokens are stateless, discarding the
// stored copy is the client's side of the contract.
func (ctrl *UserController) Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "you have been successfully logged out"})
	}
}

func (ctrl *UserController) GetProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString("uid")
		user, err := ctrl.users.GetUserByID(uid)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		user.Password = nil
		c.JSON(http.StatusOK, user)
	}
}

func HashPassword(password string) string {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		log.Panic(err)
	}
	return string(bytes)
}

func VerifyPassword(providedPassword string, hashedPassword string) (bool, string) {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(providedPassword))
	check := true
	msg := ""
	if err != nil {
		msg = fmt.Sprintf("email or password is incorrect")
		check = false
	}
	return check, msg
}
