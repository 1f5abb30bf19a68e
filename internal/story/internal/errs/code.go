package errs

var (
	SystemError            = ErrorCode{Code: 503001, Msg: "系统错误"}
	StoryNotFound          = ErrorCode{Code: 503002, Msg: "Story 不存在"}
	CommentNotFound        = ErrorCode{Code: 503003, Msg: "评论不存在"}
	InsufficientPermission = ErrorCode{Code: 503004, Msg: "没有权限"}
	InvalidInput           = ErrorCode{Code: 503005, Msg: "内容不能为空"}
	UserNotFound           = ErrorCode{Code: 503006, Msg: "用户不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
