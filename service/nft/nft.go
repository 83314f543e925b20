package nft

import (
	"context"

	"liquidator/core"
	"liquidator/pkg/resthttp"

	"github.com/fox-one/pkg/logger"
)

type ownedResponse struct {
	OwnedNfts []*core.NFT `json:"ownedNfts"`
}

type nftService struct {
	endpoint string
	owner    string
	contract string
}

// New new nft proxy service, owner and contract are fixed by config
func New(cfg core.NFTProxy) core.INFTService {
	return &nftService{
		endpoint: cfg.Endpoint,
		owner:    cfg.Owner,
		contract: cfg.Contract,
	}
}

// Owned nfts of the configured contract held by the configured owner
func (s *nftService) Owned(ctx context.Context) ([]*core.NFT, error) {
	log := logger.FromContext(ctx).WithField("service", "nft")

	resp, err := resthttp.WithRequestID(ctx, resthttp.RequestID(ctx)).
		SetQueryParams(map[string]string{
			"ownerAddress":    s.owner,
			"contractAddress": s.contract,
		}).
		Get(s.endpoint)
	if err != nil {
		log.WithError(err).Errorln("get owned nfts")
		return nil, err
	}

	var body ownedResponse
	if err := resthttp.ParseResponse(resp, &body); err != nil {
		log.WithError(err).Errorln("parse owned nfts")
		return nil, err
	}

	log.Debugf("fetched %d nfts", len(body.OwnedNfts))
	return body.OwnedNfts, nil
}
