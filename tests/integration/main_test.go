package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gecwayanad/admission-go/internal/api/middleware"
	"github.com/gecwayanad/admission-go/internal/api/routes"
	"github.com/gecwayanad/admission-go/internal/config"
	"github.com/gecwayanad/admission-go/internal/config/db"
	"github.com/gecwayanad/admission-go/internal/domain/admin"
	"github.com/gecwayanad/admission-go/internal/domain/knowledge"
	"github.com/gecwayanad/admission-go/internal/domain/student"
	"github.com/gecwayanad/admission-go/internal/testutils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/lib/pq"
)

var (
	router *gin.Engine
	gormDB *gorm.DB
)

func TestMain(m *testing.M) {
	sqlDB, cleanup := testutils.SetupPostgresForIntegration()
	defer cleanup()

	var err error
	gormDB, err = gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{
		TranslateError: true,
		Logger: logger.New(
			log.New(io.Discard, "", log.LstdFlags),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Silent,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	})
	if err != nil {
		log.Fatal(err)
	}

	config.LoadConfig()
	middleware.Init()
	db.InitWithGormDB(gormDB)

	if err := gormDB.AutoMigrate(
		&student.Student{},
		&student.Document{},
		&admin.Admin{},
		&knowledge.Entry{},
	); err != nil {
		log.Fatal(err)
	}

	gin.SetMode(gin.TestMode)
	router = gin.New()
	routes.RegisterRoutes(router)

	// default admin for the admin-side tests
	seedAdminForTests()

	code := m.Run()
	os.Exit(code)
}

// --- Helper functions ---
// doRequest marshals body to JSON (nil means no body), attaches the token
// if given, and asserts the status when expectStatus is non-zero.
func doRequest(t *testing.T, method, path string, token string, body interface{}, expectStatus int) *httptest.ResponseRecorder {
	var req *http.Request

	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		reqBody, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if expectStatus != 0 {
		require.Equal(t, expectStatus, w.Code,
			fmt.Sprintf("expected %d, got %d, body=%s", expectStatus, w.Code, w.Body.String()))
	}

	return w
}

func seedAdminForTests() {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/auth/seed-admin", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		log.Fatalf("seeding default admin failed: %d %s", w.Code, w.Body.String())
	}
}
