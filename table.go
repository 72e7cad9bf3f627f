/**
 * @Author:      thepoy
 * @Email:       thepoy@163.com
 * @File Name:   table.go
 * @Created At:  2023-03-28 21:05:12
 * @Modified At: 2023-04-02 10:16:48
 * @Modified By: thepoy
 */

package httpstatus

// statuses is the catalog in declaration order, based on the wikipedia list
// of HTTP status codes. The order matters: lookups of a shared code return
// the entries in this order. `Unknown` must stay the last element.
var statuses = []Status{
	newStatus(StatusContinue, "Continue", "The client should continue with its request."),
	newStatus(StatusSwitchingProtocols, "Switching_Protocols", "Informs the client that the server will switch to the protocol specified in the Upgrade message header field."),
	newStatus(StatusProcessing, "Processing", "The server requiring a long time to complete the request. This prevents the client from timing out and assuming the request was lost."),
	newStatus(StatusCheckpoint, "Checkpoint", "Used in the resumable requests proposal to resume aborted PUT or POST requests.[65]"),
	newStatus(StatusEarlyHints, "Early_Hints", "Used to return some response headers before entire HTTP response."),

	newStatus(StatusOK, "OK", "The request sent by the client was successful."),
	newStatus(StatusCreated, "Created", "The request was successful and the resource has been created."),
	newStatus(StatusAccepted, "Accepted", "The request has been accepted but has not yet finished processing."),
	newStatus(StatusNonAuthoritativeInformation, "Non_Authoritative_Information", "The returned meta-information in the entity header is not the definitive set of information, it might be a local copy or contain local alterations."),
	newStatus(StatusNoContent, "No_Content", "The request was successful but not require the return of an entity body."),
	newStatus(StatusResetContent, "Reset_Content", "The request was successful and the user agent should reset the view that sent the request."),
	newStatus(StatusPartialContent, "Partial_Content", "The partial request was successful."),
	newStatus(StatusMultiStatus, "Multi_Status", "The message body that follows is an XML message and can contain a number of separate response codes, depending on how many sub-requests were made."),
	newStatus(StatusAlreadyReported, "Already_Reported", "The members of a DAV binding have already been enumerated in a previous reply to this request, and are not being included again.[16]"),
	newStatus(StatusIMUsed, "IM_Used", "The server has fulfilled a request for the resource, and the response is a representation of the result of one or more instance-manipulations applied to the current instance."),

	newStatus(StatusMultipleChoices, "Multiple_Choices", "The requested resource has multiple choices, each of which has a different location."),
	newStatus(StatusMovedPermanently, "Moved_Permanently", "The requested resources has moved permanently to a new location."),
	newStatus(StatusFound, "Found", "The requested resource has been found at a different location but the client should use the original URI."),
	newStatus(StatusSeeOther, "See_Other", "The requested resource is located at a different location which should be returned by the location field in the response."),
	newStatus(StatusNotModified, "Not_Modified", "The resource has not been modified since the last request."),
	newStatus(StatusUseProxy, "Use_Proxy", "The requested resource can only be accessed through a proxy which should be provided in the location field."),
	newStatus(StatusSwitchProxy, "Switch_Proxy", "No longer used. Originally meant Subsequent requests should use the specified proxy."),
	newStatus(StatusTemporaryRedirect, "Temporary_Redirect", "The requested resource is temporarily moved to the provided location but the client should continue to use this location as the resource may again move."),
	newStatus(StatusPermanentRedirect, "Permanent_Redirect", "The request and all future requests should be repeated using another URI. Do not allow the HTTP method to change."),

	newStatus(StatusBadRequest, "Bad_Request", "The request could not be understood by the server."),
	newStatus(StatusUnauthorized, "Unauthorized", "The request requires authorization."),
	newStatus(StatusPaymentRequired, "Payment_Required", "Reserved for future use."),
	newStatus(StatusForbidden, "Forbidden", "Whilst the server did understand the request, the server is refusing to complete it. This is not an authorization problem."),
	newStatus(StatusNotFound, "Not_Found", "The requested resource was not found."),
	newStatus(StatusMethodNotAllowed, "Method_Not_Allowed", "The supplied method was not allowed on the given resource."),
	newStatus(StatusNotAcceptable, "Not_Acceptable", "The resource is not able to return a response that is suitable for the characteristics required by the accept headers of the request."),
	newStatus(StatusProxyAuthenticationRequired, "Proxy_Authentication_Required", "The client must authenticate themselves with the proxy."),
	newStatus(StatusRequestTimeout, "Request_Timeout", "The client did not supply a request in the period required by the server."),
	newStatus(StatusConflict, "Conflict", "The request could not be completed as the resource is in a conflicted state."),
	newStatus(StatusGone, "Gone", "The requested resource is no longer available on the server and no redirect address is available."),
	newStatus(StatusLengthRequired, "Length_Required", "The server will not accept the request without a Content-Length field."),
	newStatus(StatusPreconditionFailed, "Precondition_Failed", "The supplied precondition evaluated to false on the server."),
	newStatus(StatusRequestEntityTooLarge, "Request_Entity_Too_Large", "The request was unsuccessful because the request entity was larger than the server would allow"),
	newStatus(StatusRequestedURITooLong, "Requested_URI_Too_Long", "The request was unsuccessful because the requested URI is longer than the server is willing to process (that's what she said)."),
	newStatus(StatusUnsupportedMediaType, "Unsupported_Media_Type", "The request was unsuccessful because the request was for an unsupported format."),
	newStatus(StatusRequestRangeNotSatisfiable, "Request_Range_Not_Satisfiable", "The range of the resource does not overlap with the values specified in the requests Range header field and not alternative If-Range field was supplied."),
	newStatus(StatusExpectationFailed, "Expectation_Failed", "The expectation supplied in the Expectation header field could not be met by the server."),
	newStatus(StatusImATeapot, "Im_A_Teapot", "I'm a teapot (IETF April Fools' jokes)"),
	newStatus(StatusMethodFailure, "Method_Failure", "A deprecated response when a method has failed."),
	newStatus(StatusEnhanceYourCalm, "Enhance_Your_Calm", "The client is being rate limited"),
	newStatus(StatusMisdirectedRequest, "Misdirected_Request", "The request was directed at a server that is not able to produce a response (for example because a connection reuse)"),
	newStatus(StatusUnprocessedEntity, "Unprocessed_Entity", "The request was well-formed but was unable to be followed due to semantic errors."),
	newStatus(StatusLocked, "Locked", "The resource that is being accessed is locked."),
	newStatus(StatusFailedDependency, "Failed_Dependency", "The request failed due to failure of a previous request."),
	newStatus(StatusUpgradeRequired, "Upgrade_Required", "The client should switch to a different protocol , given in the Upgrade header field."),
	newStatus(StatusPreconditionRequired, "Precondition_Required", "The origin server requires the request to be conditional. Intended to prevent the lost update problem."),
	newStatus(StatusTooManyRequests, "Too_Many_Requests", "The user has sent too many requests in a given amount of time. Intended for use with rate-limiting schemes."),
	newStatus(StatusRequestHeaderFieldsTooLarge, "Request_Header_Fields_Too_Large", "The server is unwilling to process the request because either an individual header field, or all the header fields, are too large."),
	newStatus(StatusLoginTimeOut, "Login_Time_Out", "The client's session has expired."),
	newStatus(StatusNoResponse, "No_Response", "returned no information to the client and closed the connection."),
	newStatus(StatusRetryWith, "Retry_With", "The server cannot honour the request because the user has not provided the required information."),
	newStatus(StatusBlockedByWindowsParentalControls, "Blocked_by_Windows_Parental_Controls", "when Windows Parental Controls are turned on and are blocking access to the given webpage."),
	newStatus(StatusUnavailableForLegalReasons, "Unavailable_For_Legal_Reasons", "A server operator has received a legal demand to deny access to a resource or to a set of resources that includes the requested resource."),
	newStatus(StatusRedirect, "Redirect", "Used when either a more efficient server is available or the server cannot access the users' mailbox."),
	newStatus(StatusSSLCertificateError, "SSL_Certificate_Error", "The client has provided an invalid client certificate."),
	newStatus(StatusSSLCertificateRequired, "SSL_Certificate_Required", "A client certificate is required but not provided."),
	newStatus(StatusHTTPRequestSentToHTTPSPort, "HTTP_Request_Sent_to_HTTPS_Port", "client has made a HTTP request to a port listening for HTTPS requests."),
	newStatus(StatusInvalidToken, "Invalid_Token", "indicates an expired or otherwise invalid token."),
	newStatus(StatusTokenRequired, "Token_Required", "indicates that a token is required but was not submitted."),
	newStatus(StatusClientClosedRequest, "Client_Closed_Request", "The client has closed the request before the server could send a response."),

	newStatus(StatusInternalServerError, "Internal_Server_Error", "The request was unsuccessful because the server encountered an unexpected error."),
	newStatus(StatusNotImplemented, "Not_Implemented", "The server does not support the request."),
	newStatus(StatusBadGateway, "Bad_Gateway", "The server, whilst acting as a proxy, received an invalid response from the server that was fulfilling the request."),
	newStatus(StatusServiceUnavailable, "Service_Unavailable", "The request was unsuccessful as the server is either down or slash reedited."),
	newStatus(StatusGatewayTimeout, "Gateway_Timeout", "The server, whilst acting as a proxy, did not receive a response from the upstream server in an acceptable time."),
	newStatus(StatusHTTPVersionNotSupported, "Http_Version_Not_Supported", "The server does not supported the HTTP protocol version specified in the request"),
	newStatus(StatusVariantAlsoNegotiates, "Variant_Also_Negotiates", "Transparent content negotiation for the request results in a circular reference."),
	newStatus(StatusInsufficientStorage, "Insufficient_Storage", "The server is unable to store the representation needed to complete the request."),
	newStatus(StatusLoopDetected, "Loop_Detected", "The server detected an infinite loop while processing the request."),
	newStatus(StatusBandwidthLimitExceeded, "Bandwidth_Limit_Exceeded", "The server has exceeded the bandwidth specified by the server administrator."),
	newStatus(StatusNotExtended, "Not_Extended", "Further extensions to the request are required for the server to fulfill it."),
	newStatus(StatusNetworkAuthenticationRequired, "Network_Authentication_Required", "The client needs to authenticate to gain network access."),
	newStatus(StatusSiteIsFrozen, "Site_is_Frozen", "indicate a site that has been frozen due to inactivity."),
	newStatus(StatusNetworkReadTimeoutError, "Network_read_timeout_error", "to signal a network read timeout behind the proxy to a client in front of the proxy."),
	newStatus(StatusNetworkConnectTimeoutError, "Network_connect_timeout_error", "indicate when the connection to the network times out."),
	newStatus(StatusUnknownError, "Unknown_Error", "server returns something unexpected."),
	newStatus(StatusWebServerIsDown, "Web_Server_is_Down", "refused the connection."),
	newStatus(StatusConnectionTimedOut, "Connection_Timed_Out", "cannot negotiate a TCP handshake with the origin server."),
	newStatus(StatusOriginIsUnreachable, "Origin_is_Unreachable", "cannot reach the origin server"),
	newStatus(StatusATimeoutOccurred, "A_Timeout_Occurred", "did not receive a timely HTTP response."),
	newStatus(StatusSSLHandshakeFailed, "SSL_Handshake_Failed", "cannot negotiate a SSL/TLS handshake with the origin server."),
	newStatus(StatusInvalidSSLCertificate, "Invalid_SSL_Certificate", "cannot validate the SSL/TLS certificate that the origin server presented."),
	newStatus(StatusRailgunError, "Railgun_Error", "The requests timeout or failed after the WAN connection has been established."),

	newStatus(StatusUnknown, "Unknown", "Unknown or unsupported HTTP status code"),
}
