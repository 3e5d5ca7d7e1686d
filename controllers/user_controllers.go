package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/adiwirasta/franchise-supply-app/middlewares"
	"github.com/adiwirasta/franchise-supply-app/models"
	"github.com/adiwirasta/franchise-supply-app/utils"
)

type UserController struct {
	DB     *gorm.DB
	Tokens *utils.TokenManager
}

func NewUserController(db *gorm.DB, tokens *utils.TokenManager) *UserController {
	return &UserController{DB: db, Tokens: tokens}
}

var validRoles = map[string]bool{
	models.RoleAdmin:          true,
	models.RoleFranchiseOwner: true,
	models.RoleFranchiseStaff: true,
	models.RoleVendorOwner:    true,
	models.RoleVendorStaff:    true,
}

func (uc *UserController) Register(c *gin.Context) {
	type ReqBody struct {
		Name        string `json:"name" binding:"required"`
		Email       string `json:"email" binding:"required,email"`
		Password    string `json:"password" binding:"required,min=8"`
		Role        string `json:"role" binding:"required"`
		FranchiseID *uint  `json:"franchise_id"`
		VendorID    *uint  `json:"vendor_id"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !validRoles[body.Role] {
		utils.RespondError(c, http.StatusBadRequest, errors.New("unknown role"))
		return
	}
	// Role franchise wajib terikat ke franchise, role vendor ke vendor.
	if models.IsFranchiseRole(body.Role) && body.FranchiseID == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("franchise_id is required for franchise roles"))
		return
	}
	if models.IsVendorRole(body.Role) && body.VendorID == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("vendor_id is required for vendor roles"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	now := time.Now()
	user := models.User{
		Name:        body.Name,
		Email:       body.Email,
		Password:    string(hashed),
		Role:        body.Role,
		FranchiseID: body.FranchiseID,
		VendorID:    body.VendorID,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.DB.WithContext(c.Request.Context()).Create(&user).Error; err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("email already registered"))
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "User registered", user)
}

func (uc *UserController) Login(c *gin.Context) {
	type ReqBody struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var user models.User
	if err := uc.DB.WithContext(c.Request.Context()).Where("email = ?", body.Email).First(&user).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid email or password"))
		return
	}
	if !user.IsActive {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("account is inactive"))
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid email or password"))
		return
	}

	token, err := uc.Tokens.GenerateToken(user.ID, user.Role, user.Name, user.FranchiseID, user.VendorID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Login success", gin.H{
		"token": token,
		"user":  user,
	})
}

func (uc *UserController) GetProfile(c *gin.Context) {
	claims, ok := middlewares.CurrentClaims(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, ErrMissingClaims)
		return
	}

	var user models.User
	if err := uc.DB.WithContext(c.Request.Context()).First(&user, claims.UserID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("user not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "User profile", user)
}
