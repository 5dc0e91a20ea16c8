// Package camundatest runs real Zeebe job commands against a mocked gateway so
// handlers can be tested without a broker.
package camundatest

import (
	"context"

	"github.com/camunda/zeebe/clients/go/v8/pkg/commands"
	"github.com/camunda/zeebe/clients/go/v8/pkg/pb"
	"github.com/stretchr/testify/mock"
	"google.golang.org/grpc"
)

// Gateway records the job commands sent to it. Only CompleteJob, FailJob and
// ThrowError are implemented; any other call panics.
type Gateway struct {
	pb.GatewayClient
	mock.Mock
}

func (g *Gateway) CompleteJob(ctx context.Context, in *pb.CompleteJobRequest, _ ...grpc.CallOption) (*pb.CompleteJobResponse, error) {
	args := g.Called(ctx, in)
	resp, _ := args.Get(0).(*pb.CompleteJobResponse)
	return resp, args.Error(1)
}

func (g *Gateway) FailJob(ctx context.Context, in *pb.FailJobRequest, _ ...grpc.CallOption) (*pb.FailJobResponse, error) {
	args := g.Called(ctx, in)
	resp, _ := args.Get(0).(*pb.FailJobResponse)
	return resp, args.Error(1)
}

func (g *Gateway) ThrowError(ctx context.Context, in *pb.ThrowErrorRequest, _ ...grpc.CallOption) (*pb.ThrowErrorResponse, error) {
	args := g.Called(ctx, in)
	resp, _ := args.Get(0).(*pb.ThrowErrorResponse)
	return resp, args.Error(1)
}

// JobClient satisfies worker.JobClient.
type JobClient struct {
	Gateway *Gateway
}

func NewJobClient() *JobClient {
	return &JobClient{Gateway: &Gateway{}}
}

func (c *JobClient) NewCompleteJobCommand() commands.CompleteJobCommandStep1 {
	return commands.NewCompleteJobCommand(c.Gateway, neverRetry)
}

func (c *JobClient) NewFailJobCommand() commands.FailJobCommandStep1 {
	return commands.NewFailJobCommand(c.Gateway, neverRetry)
}

func (c *JobClient) NewThrowErrorCommand() commands.ThrowErrorCommandStep1 {
	return commands.NewThrowErrorCommand(c.Gateway, neverRetry)
}

func neverRetry(context.Context, error) bool {
	return false
}
