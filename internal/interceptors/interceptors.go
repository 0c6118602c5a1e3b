package interceptors

import (
	"strings"

	"google.golang.org/grpc"
)

// UnaryInterceptorApplicable decides whether interceptor runs for the call
type UnaryInterceptorApplicable func(*grpc.UnaryServerInfo) bool

func isUnaryInterceptorApplicable(info *grpc.UnaryServerInfo, fns ...UnaryInterceptorApplicable) bool {
	if len(fns) == 0 {
		return true
	}

	for _, fn := range fns {
		if !fn(info) {
			return false
		}
	}
	return true
}

// UnaryApplicableForService restricts interceptor to methods of svc
func UnaryApplicableForService(svc string) UnaryInterceptorApplicable {
	return func(info *grpc.UnaryServerInfo) bool {
		// FullMethod is the full RPC method string, i.e., /package.service/method.
		return strings.HasPrefix(info.FullMethod, "/"+svc+"/")
	}
}

// UnaryApplicableForMethods restricts interceptor to listed method names
func UnaryApplicableForMethods(methods ...string) UnaryInterceptorApplicable {
	return func(info *grpc.UnaryServerInfo) bool {
		name := info.FullMethod[strings.LastIndex(info.FullMethod, "/")+1:]
		for _, m := range methods {
			if m == name {
				return true
			}
		}
		return false
	}
}
