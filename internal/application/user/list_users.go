package user

import (
	"context"

	"github.com/xiebiao/userservice/internal/domain/user"
)

// ListUsersUseCase 用户列表查询用例
// 1. 先校验查询参数（生日区间、分页），再查询
// 2. 结果保持插入顺序
type ListUsersUseCase struct {
	userService user.Service
	validator   *user.Validator
}

// NewListUsersUseCase 创建列表查询用例
func NewListUsersUseCase(userService user.Service, validator *user.Validator) *ListUsersUseCase {
	return &ListUsersUseCase{
		userService: userService,
		validator:   validator,
	}
}

// ListUsersRequest 列表查询请求
// From、To为nil表示未传；Offset、Limit为0表示不分页
type ListUsersRequest struct {
	From   *string
	To     *string
	Offset int
	Limit  int
}

// ListUsersResponse 列表查询响应
type ListUsersResponse struct {
	Data []UserDTO `json:"data"`
}

// Execute 执行列表查询
func (uc *ListUsersUseCase) Execute(ctx context.Context, req ListUsersRequest) (resp *ListUsersResponse, err error) {
	ctx, finish := observe(ctx, opList)
	defer func() { finish(err) }()

	filter, err := uc.validator.ValidateListQuery(req.From, req.To, req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}

	users, err := uc.userService.ListUsers(ctx, filter)
	if err != nil {
		return nil, err
	}

	data := make([]UserDTO, len(users))
	for i, u := range users {
		data[i] = toUserDTO(u)
	}
	return &ListUsersResponse{Data: data}, nil
}
