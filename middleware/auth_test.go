package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/OsamaAsender/quantamstore-api/auth"
	"github.com/OsamaAsender/quantamstore-api/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Cart{}, &models.CartItem{}, &models.Order{}, &models.OrderItem{}))
	return db
}

func newRouter(db *gorm.DB, jwtService *auth.Service, adminOnly bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := []gin.HandlerFunc{RequireAuth(db, jwtService)}
	if adminOnly {
		handlers = append(handlers, AdminRequired())
	}
	handlers = append(handlers, func(c *gin.Context) {
		id, _ := UserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})
	r.GET("/protected", handlers...)
	return r
}

func request(r *gin.Engine, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuthNoCookie(t *testing.T) {
	db := setupDB(t)
	jwtService := auth.NewService("test-secret")
	r := newRouter(db, jwtService, false)

	w := request(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthInvalidToken(t *testing.T) {
	db := setupDB(t)
	jwtService := auth.NewService("test-secret")
	r := newRouter(db, jwtService, false)

	w := request(r, "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthResolvesUser(t *testing.T) {
	db := setupDB(t)
	jwtService := auth.NewService("test-secret")

	user := models.User{Username: "jane", Email: "jane@example.com", PasswordHash: "x", Role: models.RoleCustomer}
	require.NoError(t, db.Create(&user).Error)

	token, err := jwtService.IssueToken(&user)
	require.NoError(t, err)

	r := newRouter(db, jwtService, false)
	w := request(r, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), fmt.Sprintf(`"user_id":%d`, user.ID))
}

func TestRequireAuthDeletedUser(t *testing.T) {
	db := setupDB(t)
	jwtService := auth.NewService("test-secret")

	user := models.User{Username: "gone", Email: "gone@example.com", PasswordHash: "x", Role: models.RoleCustomer}
	require.NoError(t, db.Create(&user).Error)

	token, err := jwtService.IssueToken(&user)
	require.NoError(t, err)
	require.NoError(t, db.Delete(&user).Error)

	r := newRouter(db, jwtService, false)
	w := request(r, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRequired(t *testing.T) {
	db := setupDB(t)
	jwtService := auth.NewService("test-secret")

	customer := models.User{Username: "cust", Email: "cust@example.com", PasswordHash: "x", Role: models.RoleCustomer}
	admin := models.User{Username: "boss", Email: "boss@example.com", PasswordHash: "x", Role: models.RoleAdmin}
	require.NoError(t, db.Create(&customer).Error)
	require.NoError(t, db.Create(&admin).Error)

	custToken, err := jwtService.IssueToken(&customer)
	require.NoError(t, err)
	adminToken, err := jwtService.IssueToken(&admin)
	require.NoError(t, err)

	r := newRouter(db, jwtService, true)
	assert.Equal(t, http.StatusForbidden, request(r, custToken).Code)
	assert.Equal(t, http.StatusOK, request(r, adminToken).Code)
}
