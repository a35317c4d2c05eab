package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appuser "github.com/xiebiao/usercenter/internal/application/user"
	"github.com/xiebiao/usercenter/internal/interface/http/dto"
	apperrors "github.com/xiebiao/usercenter/pkg/errors"
	"github.com/xiebiao/usercenter/pkg/metrics"
	"github.com/xiebiao/usercenter/pkg/response"
	"github.com/xiebiao/usercenter/pkg/validation"
)

// UserHandler 用户HTTP处理器
// 设计说明：
// 1. Handler只负责HTTP相关的事情：解析请求、调用应用层、返回响应
// 2. 请求状态机：接收 → 校验（失败400短路）→ 执行 → 响应，不重试
// 3. 内部错误细节通过zap记录，客户端只收到通用提示
type UserHandler struct {
	listUseCase   *appuser.ListUsersUseCase
	getUseCase    *appuser.GetUserUseCase
	createUseCase *appuser.CreateUserUseCase
	updateUseCase *appuser.UpdateUserUseCase
	deleteUseCase *appuser.DeleteUserUseCase
	logger        *zap.Logger
}

// NewUserHandler 创建用户处理器
func NewUserHandler(
	listUseCase *appuser.ListUsersUseCase,
	getUseCase *appuser.GetUserUseCase,
	createUseCase *appuser.CreateUserUseCase,
	updateUseCase *appuser.UpdateUserUseCase,
	deleteUseCase *appuser.DeleteUserUseCase,
	logger *zap.Logger,
) *UserHandler {
	return &UserHandler{
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		logger:        logger,
	}
}

// List 用户列表
// @Summary      用户列表
// @Description  按存储顺序返回全部用户
// @Tags         用户
// @Produce      json
// @Success      200 {array} dto.UserResponse
// @Failure      500 {object} response.ErrorBody
// @Router       /users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.listUseCase.Execute(c.Request.Context())
	if err != nil {
		h.fail(c, "list users", err)
		return
	}
	response.Success(c, users)
}

// Get 按ID查询用户
// @Summary      查询用户
// @Tags         用户
// @Produce      json
// @Param        id path int true "用户ID"
// @Success      200 {object} dto.UserResponse
// @Failure      400 {object} response.ViolationsBody "ID不是整数"
// @Failure      404 {object} response.ErrorBody "用户不存在"
// @Failure      500 {object} response.ErrorBody
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	u, err := h.getUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "get user", err)
		return
	}
	response.Success(c, u)
}

// Create 创建用户
// @Summary      创建用户
// @Tags         用户
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateUserRequest true "用户信息"
// @Success      201 {object} dto.UserResponse
// @Failure      400 {object} response.ViolationsBody "参数校验失败或邮箱已存在"
// @Failure      500 {object} response.ErrorBody
// @Router       /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Violations(c, validation.Translate(err, dto.CreateUserMessages))
		return
	}

	u, err := h.createUseCase.Execute(c.Request.Context(), appuser.CreateUserRequest{
		Name:  req.Name,
		Email: req.Email,
		Age:   *req.Age,
	})
	if err != nil {
		if apperrors.GetAppError(err).Code == apperrors.ErrCodeEmailDuplicate {
			metrics.UserConflictsTotal.Inc()
		}
		h.fail(c, "create user", err)
		return
	}

	metrics.UsersCreatedTotal.Inc()
	response.Created(c, u)
}

// Update 更新用户
// @Summary      更新用户
// @Description  整体覆写：三个字段全部重写，缺省的可选字段按零值写入
// @Tags         用户
// @Accept       json
// @Produce      json
// @Param        id path int true "用户ID"
// @Param        request body dto.UpdateUserRequest true "用户信息（字段可选）"
// @Success      200 {object} dto.UserResponse
// @Failure      400 {object} response.ViolationsBody
// @Failure      404 {object} response.ErrorBody "用户不存在"
// @Failure      500 {object} response.ErrorBody
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Violations(c, validation.Translate(err, dto.UpdateUserMessages))
		return
	}

	// 缺省字段按零值整体覆写（历史行为，见DESIGN.md）
	var (
		name  string
		email string
		age   int
	)
	if req.Name != nil {
		name = *req.Name
	}
	if req.Email != nil {
		email = *req.Email
	}
	if req.Age != nil {
		age = *req.Age
	}

	u, err := h.updateUseCase.Execute(c.Request.Context(), appuser.UpdateUserRequest{
		ID:    id,
		Name:  name,
		Email: email,
		Age:   age,
	})
	if err != nil {
		h.fail(c, "update user", err)
		return
	}
	response.Success(c, u)
}

// Delete 删除用户
// @Summary      删除用户
// @Tags         用户
// @Produce      json
// @Param        id path int true "用户ID"
// @Success      200 {object} response.MessageBody
// @Failure      400 {object} response.ViolationsBody "ID不是整数"
// @Failure      404 {object} response.ErrorBody "用户不存在"
// @Failure      500 {object} response.ErrorBody
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if _, err := h.deleteUseCase.Execute(c.Request.Context(), id); err != nil {
		h.fail(c, "delete user", err)
		return
	}

	metrics.UsersDeletedTotal.Inc()
	response.Message(c, "User deleted successfully")
}

// parseID 解析路径参数中的用户ID
// 非整数直接400短路，不进入仓储层；负数是合法整数，交给存储层查不到即404
func (h *UserHandler) parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Violations(c, []validation.FieldError{
			{Field: "id", Message: "ID must be an integer"},
		})
		return 0, false
	}
	return id, true
}

// fail 统一错误出口：5xx记录完整内部错误，4xx只记debug
func (h *UserHandler) fail(c *gin.Context, op string, err error) {
	appErr := apperrors.GetAppError(err)
	if appErr.Code >= apperrors.ErrCodeInternal {
		h.logger.Error("request failed",
			zap.String("op", op),
			zap.Int("code", appErr.Code),
			zap.Error(err),
		)
	} else {
		h.logger.Debug("request rejected",
			zap.String("op", op),
			zap.Int("code", appErr.Code),
		)
	}
	response.Error(c, err)
}
