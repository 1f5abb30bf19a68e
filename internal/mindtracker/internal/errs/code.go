package errs

var (
	SystemError  = ErrorCode{Code: 506001, Msg: "系统错误"}
	InvalidInput = ErrorCode{Code: 506002, Msg: "progress 不能为空"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
