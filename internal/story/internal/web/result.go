package web

import (
	"errors"

	"github.com/ecodeclub/ginx"

	"github.com/mindblowndbs/mindblown/internal/story/internal/errs"
	"github.com/mindblowndbs/mindblown/internal/story/internal/service"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	storyNotFoundResult = ginx.Result{
		Code: errs.StoryNotFound.Code,
		Msg:  errs.StoryNotFound.Msg,
	}
	commentNotFoundResult = ginx.Result{
		Code: errs.CommentNotFound.Code,
		Msg:  errs.CommentNotFound.Msg,
	}
	permissionResult = ginx.Result{
		Code: errs.InsufficientPermission.Code,
		Msg:  errs.InsufficientPermission.Msg,
	}
	invalidInputResult = ginx.Result{
		Code: errs.InvalidInput.Code,
		Msg:  errs.InvalidInput.Msg,
	}
	userNotFoundResult = ginx.Result{
		Code: errs.UserNotFound.Code,
		Msg:  errs.UserNotFound.Msg,
	}
)

// errResult 把 service 的业务错误翻译成稳定错误码。
// 业务错误返回 nil error，不打系统错误日志
func errResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrStoryNotFound):
		return storyNotFoundResult, nil
	case errors.Is(err, service.ErrCommentNotFound):
		return commentNotFoundResult, nil
	case errors.Is(err, service.ErrInsufficientPermission):
		return permissionResult, nil
	case errors.Is(err, service.ErrEmptyContent):
		return invalidInputResult, nil
	case errors.Is(err, service.ErrUserNotFound):
		return userNotFoundResult, nil
	default:
		return systemErrorResult, err
	}
}
