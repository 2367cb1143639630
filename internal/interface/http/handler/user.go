package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appuser "github.com/xiebiao/userservice/internal/application/user"
	"github.com/xiebiao/userservice/internal/interface/http/dto"
	apperrors "github.com/xiebiao/userservice/pkg/errors"
	"github.com/xiebiao/userservice/pkg/response"
)

// IdempotencyKeyHeader 创建接口的幂等键请求头
const IdempotencyKeyHeader = "Idempotency-Key"

// IdempotencyStore 幂等键到已创建用户ID的映射
type IdempotencyStore interface {
	Lookup(key string) (uint, bool)
	Remember(key string, id uint)
	Forget(id uint)
}

// UserHandler 用户HTTP处理器
// 只负责HTTP相关的事情：解析请求、调用应用层、返回响应
type UserHandler struct {
	listUseCase    *appuser.ListUsersUseCase
	getUseCase     *appuser.GetUserUseCase
	createUseCase  *appuser.CreateUserUseCase
	replaceUseCase *appuser.ReplaceUserUseCase
	patchUseCase   *appuser.PatchUserUseCase
	deleteUseCase  *appuser.DeleteUserUseCase
	idempotency    IdempotencyStore
}

// NewUserHandler 创建用户处理器
func NewUserHandler(
	listUseCase *appuser.ListUsersUseCase,
	getUseCase *appuser.GetUserUseCase,
	createUseCase *appuser.CreateUserUseCase,
	replaceUseCase *appuser.ReplaceUserUseCase,
	patchUseCase *appuser.PatchUserUseCase,
	deleteUseCase *appuser.DeleteUserUseCase,
	idempotency IdempotencyStore,
) *UserHandler {
	useJSONFieldNames()
	return &UserHandler{
		listUseCase:    listUseCase,
		getUseCase:     getUseCase,
		createUseCase:  createUseCase,
		replaceUseCase: replaceUseCase,
		patchUseCase:   patchUseCase,
		deleteUseCase:  deleteUseCase,
		idempotency:    idempotency,
	}
}

// RegisterRoutes 注册/users路由
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.GET("", h.List)
		users.POST("", h.Create)
		users.GET("/:id", h.Get)
		users.PUT("/:id", h.Replace)
		users.PATCH("/:id", h.Patch)
		users.DELETE("/:id", h.Delete)
	}
}

// List 用户列表
// @Summary      用户列表
// @Description  按生日区间过滤（两端不含）后分页，结果保持创建顺序
// @Tags         用户
// @Produce      json
// @Param        from   query string false "生日下限 yyyy-MM-dd"
// @Param        to     query string false "生日上限 yyyy-MM-dd"
// @Param        offset query int    false "跳过条数"
// @Param        limit  query int    false "取多少条，0表示不限"
// @Success      200 {object} response.Response{data=[]dto.UserResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Router       /api/v1/users [get]
func (h *UserHandler) List(c *gin.Context) {
	var q dto.ListUsersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, bindError(err))
		return
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), q.ToRequest())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result.Data)
}

// Get 用户详情
// @Summary      用户详情
// @Tags         用户
// @Produce      json
// @Param        id path int true "用户ID"
// @Success      200 {object} response.Response{data=dto.UserResponse}
// @Failure      404 {object} response.Response "用户不存在"
// @Router       /api/v1/users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Create 创建用户
// @Summary      创建用户
// @Description  ID由服务端分配（当前最大ID+1）。带Idempotency-Key时，同一个key在保留期内重复提交返回第一次创建的ID
// @Tags         用户
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "幂等键"
// @Param        request body dto.UserPayload true "用户资料"
// @Success      201 {object} response.Response{data=dto.CreateUserResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Router       /api/v1/users [post]
func (h *UserHandler) Create(c *gin.Context) {
	key := c.GetHeader(IdempotencyKeyHeader)
	if key != "" {
		if id, ok := h.idempotency.Lookup(key); ok {
			response.Created(c, &dto.CreateUserResponse{ID: id})
			return
		}
	}

	var req dto.UserPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), req.ToRequest())
	if err != nil {
		response.Error(c, err)
		return
	}

	if key != "" {
		h.idempotency.Remember(key, result.ID)
	}
	response.Created(c, result)
}

// Replace 整体替换用户
// @Summary      整体替换用户
// @Tags         用户
// @Accept       json
// @Produce      json
// @Param        id      path int             true "用户ID"
// @Param        request body dto.UserPayload true "用户资料"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response "参数错误"
// @Failure      404 {object} response.Response "用户不存在"
// @Router       /api/v1/users/{id} [put]
func (h *UserHandler) Replace(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UserPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	if err := h.replaceUseCase.Execute(c.Request.Context(), id, req.ToRequest()); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// Patch 部分更新用户
// @Summary      部分更新用户
// @Description  只修改请求中出现的字段；地址出现时整体替换
// @Tags         用户
// @Accept       json
// @Produce      json
// @Param        id      path int                  true "用户ID"
// @Param        request body dto.PatchUserPayload true "要修改的字段"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response "参数错误"
// @Failure      404 {object} response.Response "用户不存在"
// @Router       /api/v1/users/{id} [patch]
func (h *UserHandler) Patch(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.PatchUserPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	if err := h.patchUseCase.Execute(c.Request.Context(), id, req.ToRequest()); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// Delete 删除用户
// @Summary      删除用户
// @Tags         用户
// @Produce      json
// @Param        id path int true "用户ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "用户不存在"
// @Router       /api/v1/users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	h.idempotency.Forget(id)

	response.Success(c, nil)
}

// parseID 解析路径参数id，失败时已写入错误响应
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "invalid user id")
		return 0, false
	}
	return uint(id), true
}
