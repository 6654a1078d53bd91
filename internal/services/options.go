package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/sirupsen/logrus"

	"github.com/light-bringer/catreq-service/internal/app/request/domain/services"
	"github.com/light-bringer/catreq-service/internal/app/request/queries/get_request"
	"github.com/light-bringer/catreq-service/internal/app/request/queries/list_requests"
	"github.com/light-bringer/catreq-service/internal/app/request/queries/list_workloads"
	"github.com/light-bringer/catreq-service/internal/app/request/repo"
	"github.com/light-bringer/catreq-service/internal/app/request/usecases/allocate_sku"
	"github.com/light-bringer/catreq-service/internal/app/request/usecases/apply_decision"
	"github.com/light-bringer/catreq-service/internal/app/request/usecases/assign_request"
	"github.com/light-bringer/catreq-service/internal/app/request/usecases/create_request"
	"github.com/light-bringer/catreq-service/internal/app/request/usecases/delete_product_request"
	"github.com/light-bringer/catreq-service/internal/app/request/usecases/update_request"
	"github.com/light-bringer/catreq-service/internal/pkg/clock"
	"github.com/light-bringer/catreq-service/internal/pkg/committer"
	"github.com/light-bringer/catreq-service/internal/transport/http/request"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient  *spanner.Client
	RequestHandler *request.Handler
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, spannerDB string, logger *logrus.Logger) (*ServiceOptions, error) {
	// 1. Initialize Spanner client
	spannerClient, err := spanner.NewClient(ctx, spannerDB)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}

	// 2. Create infrastructure components
	clk := clock.NewRealClock()
	comm := committer.NewCommitter(spannerClient)

	// 3. Create repositories and adapters
	requestRepo := repo.NewRequestRepo(spannerClient, clk)
	catalogStore := repo.NewCatalogStore(spannerClient)
	directory := repo.NewDirectory(spannerClient)
	outboxRepo := repo.NewOutboxRepo(spannerClient)
	readModel := repo.NewReadModel(spannerClient)
	skuIndex := repo.NewSKUIndex(spannerClient)

	// 4. Create domain services
	skuAllocator := services.NewSKUAllocator(skuIndex)

	// 5. Create command use cases (write operations)
	createRequestUseCase := create_request.NewInteractor(requestRepo, catalogStore, directory, outboxRepo, comm, clk)
	updateRequestUseCase := update_request.NewInteractor(requestRepo, directory, skuIndex, outboxRepo, comm, clk)
	deleteProductRequestUseCase := delete_product_request.NewInteractor(requestRepo, catalogStore, directory, outboxRepo, comm, clk)
	applyDecisionUseCase := apply_decision.NewInteractor(requestRepo, catalogStore, directory, outboxRepo, comm, clk)
	assignRequestUseCase := assign_request.NewInteractor(requestRepo, directory, outboxRepo, comm, clk)
	allocateSKUUseCase := allocate_sku.NewInteractor(skuAllocator)

	// 6. Create query use cases (read operations)
	getRequestQuery := get_request.NewQuery(readModel)
	listRequestsQuery := list_requests.NewQuery(readModel, directory)
	listWorkloadsQuery := list_workloads.NewQuery(readModel, directory)

	// 7. Create HTTP handler
	requestHandler := request.NewHandler(
		createRequestUseCase,
		updateRequestUseCase,
		deleteProductRequestUseCase,
		applyDecisionUseCase,
		assignRequestUseCase,
		allocateSKUUseCase,
		getRequestQuery,
		listRequestsQuery,
		listWorkloadsQuery,
		logger,
	)

	return &ServiceOptions{
		SpannerClient:  spannerClient,
		RequestHandler: requestHandler,
	}, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
