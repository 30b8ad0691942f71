package character_test

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	mockchain "github.com/KirkDiggler/nft-game-bot/internal/clients/chain/mock"
	"github.com/KirkDiggler/nft-game-bot/internal/contract"
	"github.com/KirkDiggler/nft-game-bot/internal/entities"
	apperr "github.com/KirkDiggler/nft-game-bot/internal/errors"
	mockcharacters "github.com/KirkDiggler/nft-game-bot/internal/repositories/characters/mock"
	"github.com/KirkDiggler/nft-game-bot/internal/services/character"
	"github.com/KirkDiggler/nft-game-bot/internal/testutils"
	mockuuid "github.com/KirkDiggler/nft-game-bot/internal/uuid/mocks"
)

const (
	ownerChecksummed = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	ownerLower       = "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"
)

type ServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	chain   *mockchain.MockClient
	repo    *mockcharacters.MockRepository
	clock   *mockcharacters.MockTimeProvider
	ids     *mockuuid.MockGenerator
	now     time.Time
	service character.Service
	ctx     context.Context
	owner   common.Address
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.chain = mockchain.NewMockClient(s.ctrl)
	s.repo = mockcharacters.NewMockRepository(s.ctrl)
	s.clock = mockcharacters.NewMockTimeProvider(s.ctrl)
	s.ids = mockuuid.NewMockGenerator(s.ctrl)
	s.now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s.clock.EXPECT().Now().Return(s.now).AnyTimes()
	s.ids.EXPECT().New().Return("snap-1").AnyTimes()
	s.service = character.NewService(&character.ServiceConfig{
		ChainClient:   s.chain,
		Repository:    s.repo,
		UUIDGenerator: s.ids,
		TimeProvider:  s.clock,
	})
	s.ctx = context.Background()
	s.owner = common.HexToAddress(ownerChecksummed)
}

func (s *ServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) TestGetCharacter_CacheHit() {
	cached := testutils.CreateTestSnapshot(ownerChecksummed, "Knight")
	s.repo.EXPECT().Get(s.ctx, ownerChecksummed).Return(cached, nil)

	// lowercase input is normalised to the checksummed key
	got, err := s.service.GetCharacter(s.ctx, ownerLower)
	s.Require().NoError(err)
	s.Equal("Knight", got.Character.Name)
	s.True(got.Meta.GetBoolOrDefault(entities.MetaCached, false))
}

func (s *ServiceTestSuite) TestGetCharacter_CacheMissReadsChain() {
	s.repo.EXPECT().Get(s.ctx, ownerChecksummed).Return(nil, apperr.NotFound("miss"))
	s.chain.EXPECT().GetUserNFT(s.ctx, s.owner).Return(testutils.CreateTestCharacterNFT("Knight", 100, 100, 15), nil)
	s.chain.EXPECT().BlockNumber(s.ctx).Return(uint64(1234), nil)

	var stored *entities.CharacterSnapshot
	s.repo.EXPECT().Put(s.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, snap *entities.CharacterSnapshot) error {
		stored = snap
		return nil
	})

	got, err := s.service.GetCharacter(s.ctx, ownerChecksummed)
	s.Require().NoError(err)

	s.Equal(&entities.Character{
		Name:         "Knight",
		ImageURI:     "ipfs://Knight",
		Hp:           100,
		MaxHp:        100,
		AttackDamage: 15,
	}, got.Character)
	s.Equal(ownerChecksummed, got.Owner)
	s.Equal(contract.Address, got.Meta.GetStringOrDefault(entities.MetaContract, ""))
	s.Equal(int64(1234), got.Meta.GetNumberOrDefault(entities.MetaBlock, 0))
	s.False(got.Meta.GetBoolOrDefault(entities.MetaCached, true))
	s.Same(got, stored)
}

func (s *ServiceTestSuite) TestGetCharacter_CacheErrorFallsBackToChain() {
	s.repo.EXPECT().Get(s.ctx, ownerChecksummed).Return(nil, errors.New("redis down"))
	s.chain.EXPECT().GetUserNFT(s.ctx, s.owner).Return(testutils.CreateTestCharacterNFT("Knight", 100, 100, 15), nil)
	s.chain.EXPECT().BlockNumber(s.ctx).Return(uint64(0), apperr.Unavailablef("node down"))
	s.repo.EXPECT().Put(s.ctx, gomock.Any()).Return(errors.New("redis down"))

	got, err := s.service.GetCharacter(s.ctx, ownerChecksummed)
	s.Require().NoError(err)
	s.Equal("Knight", got.Character.Name)
	s.False(got.Meta.Has(entities.MetaBlock))
}

func (s *ServiceTestSuite) TestRefresh_StampsSnapshotEvenWhenCacheWriteFails() {
	s.chain.EXPECT().GetUserNFT(s.ctx, s.owner).Return(testutils.CreateTestCharacterNFT("Knight", 100, 100, 15), nil)
	s.chain.EXPECT().BlockNumber(s.ctx).Return(uint64(9), nil)
	s.repo.EXPECT().Put(s.ctx, gomock.Any()).Return(errors.New("redis down"))

	got, err := s.service.Refresh(s.ctx, ownerChecksummed)
	s.Require().NoError(err)
	s.Equal("snap-1", got.ID)
	s.Equal(s.now, got.FetchedAt)
}

func (s *ServiceTestSuite) TestRefresh_StrictCacheReportsWriteFailure() {
	strict := character.NewService(&character.ServiceConfig{
		ChainClient:   s.chain,
		Repository:    s.repo,
		UUIDGenerator: s.ids,
		TimeProvider:  s.clock,
		StrictCache:   true,
	})
	s.chain.EXPECT().GetUserNFT(s.ctx, s.owner).Return(testutils.CreateTestCharacterNFT("Knight", 100, 100, 15), nil)
	s.chain.EXPECT().BlockNumber(s.ctx).Return(uint64(9), nil)
	s.repo.EXPECT().Put(s.ctx, gomock.Any()).Return(errors.New("redis down"))

	_, err := strict.Refresh(s.ctx, ownerChecksummed)
	s.True(apperr.IsUnavailable(err))
	s.Equal(ownerChecksummed, apperr.GetMeta(err)["owner"])
}

func (s *ServiceTestSuite) TestGetCharacter_InvalidAddress() {
	_, err := s.service.GetCharacter(s.ctx, "0x1234")
	s.True(apperr.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestRefresh_NotFoundPropagates() {
	s.chain.EXPECT().GetUserNFT(s.ctx, s.owner).Return(nil, apperr.NotFound("no character"))

	_, err := s.service.Refresh(s.ctx, ownerChecksummed)
	s.True(apperr.IsNotFound(err))
	s.Equal(ownerChecksummed, apperr.GetMeta(err)["owner"])
}

func (s *ServiceTestSuite) TestRefresh_OverflowPropagates() {
	nft := testutils.CreateTestCharacterNFT("Titan", 1, 1, 1)
	nft.MaxHp = new(big.Int).Lsh(big.NewInt(1), 64)
	s.chain.EXPECT().GetUserNFT(s.ctx, s.owner).Return(nft, nil)

	_, err := s.service.Refresh(s.ctx, ownerChecksummed)
	s.True(apperr.IsOutOfRange(err))
	s.Equal("maxHp", apperr.GetMeta(err)["field"])
}

func (s *ServiceTestSuite) TestGetCharacters_SkipsOwnersWithoutNFT() {
	other := "0x1D33fc00b70AE9ab5B338CBeEA9f660122Cfb69b"

	s.repo.EXPECT().Get(gomock.Any(), ownerChecksummed).Return(testutils.CreateTestSnapshot(ownerChecksummed, "Knight"), nil)
	s.repo.EXPECT().Get(gomock.Any(), other).Return(nil, apperr.NotFound("miss"))
	s.chain.EXPECT().GetUserNFT(gomock.Any(), common.HexToAddress(other)).Return(nil, apperr.NotFound("no character"))

	got, err := s.service.GetCharacters(s.ctx, []string{ownerChecksummed, other})
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal("Knight", got[0].Character.Name)
}

func (s *ServiceTestSuite) TestGetCharacters_RejectsBadAddressUpFront() {
	_, err := s.service.GetCharacters(s.ctx, []string{ownerChecksummed, "nope"})
	s.True(apperr.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestListDefaultCharacters() {
	s.chain.EXPECT().GetAllDefaultCharacters(s.ctx).Return([]*entities.CharacterNFT{
		testutils.CreateTestCharacterNFT("Knight", 100, 100, 15),
		testutils.CreateTestCharacterNFT("Archer", 200, 200, 50),
	}, nil)

	got, err := s.service.ListDefaultCharacters(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal("Archer", got[1].Name)
	s.Equal(int64(50), got[1].AttackDamage)
}

func (s *ServiceTestSuite) TestListDefaultCharacters_OneBadRecordFails() {
	bad := testutils.CreateTestCharacterNFT("Broken", 1, 1, 1)
	bad.Hp = big.NewInt(-5)
	s.chain.EXPECT().GetAllDefaultCharacters(s.ctx).Return([]*entities.CharacterNFT{
		testutils.CreateTestCharacterNFT("Knight", 100, 100, 15),
		bad,
	}, nil)

	_, err := s.service.ListDefaultCharacters(s.ctx)
	s.True(apperr.IsOutOfRange(err))
	s.Equal(1, apperr.GetMeta(err)["index"])
}

func (s *ServiceTestSuite) TestGetBoss() {
	s.chain.EXPECT().GetBigBoss(s.ctx).Return(testutils.CreateTestCharacterNFT("Elon", 9000, 10000, 50), nil)

	boss, err := s.service.GetBoss(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(9000), boss.Hp)
}

func (s *ServiceTestSuite) TestGetBoss_ChainError() {
	s.chain.EXPECT().GetBigBoss(s.ctx).Return(nil, apperr.Unavailablef("node down"))

	_, err := s.service.GetBoss(s.ctx)
	s.True(apperr.IsUnavailable(err))
}

func (s *ServiceTestSuite) TestContractAddress_Default() {
	s.Equal(contract.Address, s.service.ContractAddress())
}
