package server

import (
	"errors"
	"net/http"

	"github.com/Snkumar21/Rentor-Website/internal/metrics"
	"github.com/Snkumar21/Rentor-Website/internal/models"
	"github.com/Snkumar21/Rentor-Website/internal/mw"
	"github.com/Snkumar21/Rentor-Website/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Handler 聚合所有 HTTP handler，依赖注入 service 层。
type Handler struct {
	accounts   *service.AccountService
	properties *service.PropertyService
	contacts   *service.ContactService
}

func NewHandler(accounts *service.AccountService, properties *service.PropertyService, contacts *service.ContactService) *Handler {
	return &Handler{accounts: accounts, properties: properties, contacts: contacts}
}

// 请求体既可以是 JSON 也可以是 urlencoded 表单，由 ShouldBind 按 Content-Type 选择。
type credentialsRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type contactRequest struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Message string `json:"message" form:"message"`
}

type propertyRequest struct {
	PropertyType string `json:"propertyType" form:"propertyType"`
	Location     string `json:"location" form:"location"`
	PriceRange   string `json:"priceRange" form:"priceRange"`
	Description  string `json:"description" form:"description"`
}

// Register 处理 POST /registerform。
func (h *Handler) Register(c *gin.Context) {
	var req credentialsRequest
	if !bind(c, &req) {
		return
	}
	_, err := h.accounts.Register(c.Request.Context(), req.Username, req.Password)
	metrics.RegistrationsTotal.WithLabelValues(service.KindName(err)).Inc()
	if err != nil {
		fail(c, "register", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "User registered successfully"})
}

// Login 处理 POST /loginform。
func (h *Handler) Login(c *gin.Context) {
	var req credentialsRequest
	if !bind(c, &req) {
		return
	}
	result, err := h.accounts.Login(c.Request.Context(), req.Username, req.Password)
	metrics.LoginsTotal.WithLabelValues(service.KindName(err)).Inc()
	if err != nil {
		fail(c, "login", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Login successful", "token": result.Token})
}

func (h *Handler) Contact(c *gin.Context) {
	var req contactRequest
	if !bind(c, &req) {
		return
	}
	msg := models.ContactMessage{Name: req.Name, Email: req.Email, Message: req.Message}
	if err := h.contacts.Submit(c.Request.Context(), &msg); err != nil {
		fail(c, "contact", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Message submitted successfully"})
}

func (h *Handler) PostProperty(c *gin.Context) {
	var req propertyRequest
	if !bind(c, &req) {
		return
	}
	post := models.PropertyPost{
		PropertyType: req.PropertyType,
		Location:     req.Location,
		PriceRange:   req.PriceRange,
		Description:  req.Description,
	}
	if err := h.properties.Post(c.Request.Context(), &post); err != nil {
		fail(c, "post property", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Property posted successfully"})
}

// GetPropertyPosts 直接返回数组，不包一层 success。
func (h *Handler) GetPropertyPosts(c *gin.Context) {
	posts, err := h.properties.List(c.Request.Context())
	if err != nil {
		fail(c, "list properties", err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *Handler) SearchProperties(c *gin.Context) {
	posts, err := h.properties.Search(c.Request.Context(), c.Query("q"))
	metrics.SearchesTotal.WithLabelValues(service.KindName(err)).Inc()
	if err != nil {
		fail(c, "search properties", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "properties": posts})
}

func bind(c *gin.Context, dst any) bool {
	if err := c.ShouldBind(dst); err != nil {
		log.Warn().Err(err).Str("request_id", mw.GetRequestID(c)).Msg("bind request body")
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return false
	}
	return true
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrDuplicateUser),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrInvalidPassword):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// fail 写出统一的失败响应。内部原因只进日志，客户端只看到固定消息。
func fail(c *gin.Context, op string, err error) {
	status := statusOf(err)
	ev := log.Warn()
	if status >= http.StatusInternalServerError {
		ev = log.Error()
	}
	ev.Err(err).Str("op", op).Str("request_id", mw.GetRequestID(c)).Int("status", status).Msg("request failed")
	c.JSON(status, gin.H{"success": false, "message": service.MessageOf(err)})
}
