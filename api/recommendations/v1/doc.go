// Package recommendationsv1 holds the generated code for recommendations.proto.
// The proto declares no package, so the service is addressed as
// "/Recommendations/Recommend", the path existing stubs already call.
package recommendationsv1

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative recommendations.proto
