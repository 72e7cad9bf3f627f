/**
 * @Author:      thepoy
 * @Email:       thepoy@163.com
 * @File Name:   class.go
 * @Created At:  2023-03-29 20:42:03
 * @Modified At: 2023-03-29 21:30:17
 * @Modified By: thepoy
 */

package httpstatus

// Class is the response class of a status, given by the first digit of its code.
type Class uint8

const (
	ClassUnknown Class = iota
	Informational
	Success
	Redirection
	ClientError
	ServerError
)

var classNames = []string{
	ClassUnknown:  "Unknown",
	Informational: "Information",
	Success:       "Success",
	Redirection:   "Redirection",
	ClientError:   "Client Error",
	ServerError:   "Server Error",
}

func (c Class) String() string {
	if int(c) >= len(classNames) {
		return classNames[ClassUnknown]
	}
	return classNames[c]
}

func classOf(code StatusCode) Class {
	switch code / 100 {
	case 1:
		return Informational
	case 2:
		return Success
	case 3:
		return Redirection
	case 4:
		return ClientError
	case 5:
		return ServerError
	default:
		return ClassUnknown
	}
}
