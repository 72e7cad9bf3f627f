/**
 * @Author:      thepoy
 * @Email:       thepoy@163.com
 * @File Name:   status.go
 * @Created At:  2022-03-01 12:48:11
 * @Modified At: 2023-04-02 10:16:48
 * @Modified By: thepoy
 */

package httpstatus

// StatusCode is a numeric HTTP status code. Several catalogued codes are
// shared by more than one status, so a StatusCode alone does not identify
// an entry.
type StatusCode int

// String returns the name of the first status declared with this code,
// or the name of `Unknown` if the code is not catalogued.
func (sc StatusCode) String() string {
	return GetByCode(int(sc))[0].Name()
}

// Statuses returns every status declared with this code.
func (sc StatusCode) Statuses() []Status {
	return GetByCode(int(sc))
}

// Known reports whether at least one catalogued status uses this code.
func (sc StatusCode) Known() bool {
	_, ok := Lookup(int(sc))
	return ok
}

// Status codes in declaration order. Codes that appear twice are conflicting
// or vendor-specific definitions of the same number.
const (
	StatusContinue           StatusCode = 100
	StatusSwitchingProtocols StatusCode = 101
	StatusProcessing         StatusCode = 102
	StatusCheckpoint         StatusCode = 103
	StatusEarlyHints         StatusCode = 103

	StatusOK                          StatusCode = 200
	StatusCreated                     StatusCode = 201
	StatusAccepted                    StatusCode = 202
	StatusNonAuthoritativeInformation StatusCode = 203
	StatusNoContent                   StatusCode = 204
	StatusResetContent                StatusCode = 205
	StatusPartialContent              StatusCode = 206
	StatusMultiStatus                 StatusCode = 207
	StatusAlreadyReported             StatusCode = 208
	StatusIMUsed                      StatusCode = 226

	StatusMultipleChoices   StatusCode = 300
	StatusMovedPermanently  StatusCode = 301
	StatusFound             StatusCode = 302
	StatusSeeOther          StatusCode = 303
	StatusNotModified       StatusCode = 304
	StatusUseProxy          StatusCode = 305
	StatusSwitchProxy       StatusCode = 306
	StatusTemporaryRedirect StatusCode = 307
	StatusPermanentRedirect StatusCode = 308

	StatusBadRequest                       StatusCode = 400
	StatusUnauthorized                     StatusCode = 401
	StatusPaymentRequired                  StatusCode = 402
	StatusForbidden                        StatusCode = 403
	StatusNotFound                         StatusCode = 404
	StatusMethodNotAllowed                 StatusCode = 405
	StatusNotAcceptable                    StatusCode = 406
	StatusProxyAuthenticationRequired      StatusCode = 407
	StatusRequestTimeout                   StatusCode = 408
	StatusConflict                         StatusCode = 409
	StatusGone                             StatusCode = 410
	StatusLengthRequired                   StatusCode = 411
	StatusPreconditionFailed               StatusCode = 412
	StatusRequestEntityTooLarge            StatusCode = 413
	StatusRequestedURITooLong              StatusCode = 414
	StatusUnsupportedMediaType             StatusCode = 415
	StatusRequestRangeNotSatisfiable       StatusCode = 416
	StatusExpectationFailed                StatusCode = 417
	StatusImATeapot                        StatusCode = 418
	StatusMethodFailure                    StatusCode = 420
	StatusEnhanceYourCalm                  StatusCode = 420
	StatusMisdirectedRequest               StatusCode = 421
	StatusUnprocessedEntity                StatusCode = 422
	StatusLocked                           StatusCode = 423
	StatusFailedDependency                 StatusCode = 424
	StatusUpgradeRequired                  StatusCode = 426
	StatusPreconditionRequired             StatusCode = 428
	StatusTooManyRequests                  StatusCode = 429
	StatusRequestHeaderFieldsTooLarge      StatusCode = 431
	StatusLoginTimeOut                     StatusCode = 440
	StatusNoResponse                       StatusCode = 444
	StatusRetryWith                        StatusCode = 449
	StatusBlockedByWindowsParentalControls StatusCode = 450
	StatusUnavailableForLegalReasons       StatusCode = 451
	StatusRedirect                         StatusCode = 451
	StatusSSLCertificateError              StatusCode = 495
	StatusSSLCertificateRequired           StatusCode = 496
	StatusHTTPRequestSentToHTTPSPort       StatusCode = 497
	StatusInvalidToken                     StatusCode = 498
	StatusTokenRequired                    StatusCode = 499
	StatusClientClosedRequest              StatusCode = 499

	StatusInternalServerError           StatusCode = 500
	StatusNotImplemented                StatusCode = 501
	StatusBadGateway                    StatusCode = 502
	StatusServiceUnavailable            StatusCode = 503
	StatusGatewayTimeout                StatusCode = 504
	StatusHTTPVersionNotSupported       StatusCode = 505
	StatusVariantAlsoNegotiates         StatusCode = 506
	StatusInsufficientStorage           StatusCode = 507
	StatusLoopDetected                  StatusCode = 508
	StatusBandwidthLimitExceeded        StatusCode = 509
	StatusNotExtended                   StatusCode = 510
	StatusNetworkAuthenticationRequired StatusCode = 511
	StatusSiteIsFrozen                  StatusCode = 530
	StatusNetworkReadTimeoutError       StatusCode = 598
	StatusNetworkConnectTimeoutError    StatusCode = 599
	StatusUnknownError                  StatusCode = 520
	StatusWebServerIsDown               StatusCode = 521
	StatusConnectionTimedOut            StatusCode = 522
	StatusOriginIsUnreachable           StatusCode = 523
	StatusATimeoutOccurred              StatusCode = 524
	StatusSSLHandshakeFailed            StatusCode = 525
	StatusInvalidSSLCertificate         StatusCode = 526
	StatusRailgunError                  StatusCode = 527

	StatusUnknown StatusCode = 999
)
