package handlers

import (
  "net/http"
  "strconv"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/yungbote/recorddesk-backend/internal/apierr"
  "github.com/yungbote/recorddesk-backend/internal/services"
)

type UserHandler struct {
  userService     services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
  return &UserHandler{userService: userService}
}

// List returns the newest verified users, 3 by default.
func (uh *UserHandler) List(c *gin.Context) {
  limit := 3
  if raw := c.Query("limit"); raw != "" {
    if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
      limit = parsed
    }
  }
  users, err := uh.userService.ListVerified(c.Request.Context(), limit)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"users": users})
}

// Active returns every verified user, unlimited.
func (uh *UserHandler) Active(c *gin.Context) {
  users, err := uh.userService.ListVerified(c.Request.Context(), 0)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"users": users})
}

func (uh *UserHandler) GetByID(c *gin.Context) {
  userID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusNotFound, apierr.CodeNotFound, err)
    return
  }
  user, svcErr := uh.userService.GetByID(c.Request.Context(), userID)
  if svcErr != nil {
    RespondServiceError(c, svcErr)
    return
  }
  RespondOK(c, gin.H{"user": user})
}

func (uh *UserHandler) CheckOrCreate(c *gin.Context) {
  user, err := uh.userService.FindOrCreate(c.Request.Context(), c.Param("name"), c.Param("email"))
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"user": user})
}

func (uh *UserHandler) CheckOrUpdate(c *gin.Context) {
  user, err := uh.userService.FindOrUpdate(c.Request.Context(), c.Param("name"), c.Param("email"))
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"user": user})
}

func (uh *UserHandler) MassDelete(c *gin.Context) {
  var body struct {
    Users         []uuid.UUID   `json:"users"`
  }
  if err := c.ShouldBindJSON(&body); err != nil {
    RespondError(c, http.StatusBadRequest, apierr.CodeValidation, err)
    return
  }
  deleted, err := uh.userService.MassDelete(c.Request.Context(), body.Users)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"deleted": deleted})
}
