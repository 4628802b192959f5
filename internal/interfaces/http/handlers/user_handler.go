// internal/interfaces/http/handlers/user_handler.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/domain/user"
	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/interfaces/http/middleware"
	"github.com/vatsalbhavsar03/ShoeVerse-Backend/internal/pkg/email"
)

// UserHandler handles user endpoints
type UserHandler struct {
	users      *user.Service
	otp        *user.OTPService
	dispatcher *email.Dispatcher
}

// NewUserHandler creates a new user handler
func NewUserHandler(users *user.Service, otp *user.OTPService, dispatcher *email.Dispatcher) *UserHandler {
	return &UserHandler{users: users, otp: otp, dispatcher: dispatcher}
}

// Register handles POST /user/Register
func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	u, err := h.users.Register(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondCreated(c, "User registered successfully", u)
}

// Login handles POST /user/Login
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.users.Login(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Login successful", resp)
}

type sendOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// SendOTP handles POST /user/SendOTP. The code goes out by email; the
// client only gets the challenge ID.
func (h *UserHandler) SendOTP(c *gin.Context) {
	var req sendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	u, err := h.users.GetByEmail(req.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	challenge, err := h.otp.Issue(c.Request.Context(), u.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	if h.dispatcher != nil {
		h.dispatcher.EnqueueOTP(u.Email, challenge.Code, challenge.ExpiresAt)
	}

	respondOK(c, "OTP sent successfully", gin.H{
		"challenge_id": challenge.ID,
		"expires_at":   challenge.ExpiresAt,
	})
}

type verifyOTPRequest struct {
	ChallengeID string `json:"challenge_id" binding:"required"`
	Code        string `json:"code" binding:"required"`
	NewPassword string `json:"new_password"`
}

// VerifyOTP handles POST /user/VerifyOTP. When new_password is set the
// verified user's password is reset in the same call.
func (h *UserHandler) VerifyOTP(c *gin.Context) {
	var req verifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	verifiedEmail, err := h.otp.Verify(c.Request.Context(), req.ChallengeID, req.Code)
	if err != nil {
		respondError(c, err)
		return
	}

	if req.NewPassword != "" {
		if err := h.users.ResetPassword(verifiedEmail, req.NewPassword); err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, "Password reset successfully", gin.H{"email": verifiedEmail})
		return
	}

	respondOK(c, "OTP verified successfully", gin.H{"email": verifiedEmail})
}

// GetProfile handles GET /user/Profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondBadRequest(c, "User not authenticated")
		return
	}

	u, err := h.users.GetByID(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, "Profile fetched successfully", u)
}
