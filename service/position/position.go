package position

import (
	"context"
	"errors"
	"fmt"

	"liquidator/core"
	"liquidator/pkg/resthttp"

	"github.com/fox-one/pkg/logger"
)

const positionsQuery = `query Positions($first: Int!) {
  positions(first: $first) {
    id
    account { id }
    token { id }
    borrowShares
    bidder { id }
    pool {
      id
      totalSupplyShares
      totalSupplyAssets
      totalBorrowShares
      totalBorrowAssets
      utilizationRate
      ltv
      lth
      borrowRate
      lendingRate
      oracle
      irm { id }
      loanToken { id }
      collateralToken { id }
      curator { id }
    }
  }
}`

// DefaultFirst positions requested per query
const DefaultFirst = 1000

type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type positionsResponse struct {
	Data struct {
		Positions []*core.Position `json:"positions"`
	} `json:"data"`
	Errors []graphqlError `json:"errors"`
}

type positionService struct {
	endpoint string
	token    string
	first    int
}

// New new graphql position service
func New(cfg core.Indexer) core.IPositionService {
	first := cfg.First
	if first <= 0 {
		first = DefaultFirst
	}

	return &positionService{
		endpoint: cfg.Endpoint,
		token:    cfg.Token,
		first:    first,
	}
}

// List the first page of positions, anything past it is not returned
func (s *positionService) List(ctx context.Context) ([]*core.Position, error) {
	log := logger.FromContext(ctx).WithField("service", "position")

	req := resthttp.WithRequestID(ctx, resthttp.RequestID(ctx)).SetBody(graphqlRequest{
		Query:     positionsQuery,
		Variables: map[string]interface{}{"first": s.first},
	})
	if s.token != "" {
		req = req.SetAuthToken(s.token)
	}

	resp, err := req.Post(s.endpoint)
	if err != nil {
		log.WithError(err).Errorln("query positions")
		return nil, err
	}

	var body positionsResponse
	if err := resthttp.ParseResponse(resp, &body); err != nil {
		log.WithError(err).Errorln("parse positions")
		return nil, err
	}

	if len(body.Errors) > 0 {
		return nil, fmt.Errorf("query positions: %w", errors.New(body.Errors[0].Message))
	}

	log.Debugf("fetched %d positions", len(body.Data.Positions))
	return body.Data.Positions, nil
}
