package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/userservice/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(t *testing.T, handler gin.HandlerFunc) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	handler(c)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestSuccess(t *testing.T) {
	t.Run("空列表保留data字段", func(t *testing.T) {
		w, body := perform(t, func(c *gin.Context) { Success(c, []string{}) })

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(0), body["code"])
		assert.Equal(t, []interface{}{}, body["data"])
	})

	t.Run("创建返回201", func(t *testing.T) {
		w, body := perform(t, func(c *gin.Context) { Created(c, map[string]uint{"id": 1}) })

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, map[string]interface{}{"id": float64(1)}, body["data"])
	})
}

func TestError(t *testing.T) {
	t.Run("业务错误按错误码映射状态", func(t *testing.T) {
		w, body := perform(t, func(c *gin.Context) {
			Error(c, apperrors.New(apperrors.ErrCodeUserNotFound, "User is not found"))
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, float64(40401), body["code"])
		assert.Equal(t, "User is not found", body["message"])
		assert.Nil(t, body["data"])
	})

	t.Run("普通错误返回500且不泄露内部信息", func(t *testing.T) {
		w, body := perform(t, func(c *gin.Context) { Error(c, errors.New("db password wrong")) })

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "internal server error", body["message"])
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("自定义错误码", func(t *testing.T) {
		w, body := perform(t, func(c *gin.Context) {
			ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "invalid user id")
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid user id", body["message"])
	})
}
