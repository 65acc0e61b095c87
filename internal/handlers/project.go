package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/yungbote/recorddesk-backend/internal/apierr"
  "github.com/yungbote/recorddesk-backend/internal/services"
)

type ProjectHandler struct {
  projectService  services.ProjectService
}

func NewProjectHandler(projectService services.ProjectService) *ProjectHandler {
  return &ProjectHandler{projectService: projectService}
}

func (ph *ProjectHandler) List(c *gin.Context) {
  projects, err := ph.projectService.ListActive(c.Request.Context())
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"projects": projects})
}

func (ph *ProjectHandler) Create(c *gin.Context) {
  var body struct {
    Name          string        `json:"name"`
  }
  if err := c.ShouldBindJSON(&body); err != nil {
    RespondError(c, http.StatusBadRequest, apierr.CodeValidation, err)
    return
  }
  project, err := ph.projectService.Create(c.Request.Context(), body.Name)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondCreated(c, gin.H{"project": project})
}

func (ph *ProjectHandler) MassUpdate(c *gin.Context) {
  var body struct {
    OldName       string        `json:"old_name"`
    NewName       string        `json:"new_name"`
  }
  if err := c.ShouldBindJSON(&body); err != nil {
    RespondError(c, http.StatusBadRequest, apierr.CodeValidation, err)
    return
  }
  updated, err := ph.projectService.MassUpdate(c.Request.Context(), body.OldName, body.NewName)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"updated": updated})
}

// SoftDelete marks the project removed and echoes its latest field values so
// the caller can show a confirmation.
func (ph *ProjectHandler) SoftDelete(c *gin.Context) {
  projectID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    RespondError(c, http.StatusNotFound, apierr.CodeNotFound, err)
    return
  }
  project, svcErr := ph.projectService.SoftDelete(c.Request.Context(), projectID)
  if svcErr != nil {
    RespondServiceError(c, svcErr)
    return
  }
  RespondOK(c, gin.H{"project": project})
}
