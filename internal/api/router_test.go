package api_test

import (
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/nft-game-bot/internal/api"
	mockchain "github.com/KirkDiggler/nft-game-bot/internal/clients/chain/mock"
	"github.com/KirkDiggler/nft-game-bot/internal/contract"
	"github.com/KirkDiggler/nft-game-bot/internal/entities"
	apperr "github.com/KirkDiggler/nft-game-bot/internal/errors"
	"github.com/KirkDiggler/nft-game-bot/internal/services"
	"github.com/KirkDiggler/nft-game-bot/internal/testutils"
	mockuuid "github.com/KirkDiggler/nft-game-bot/internal/uuid/mocks"
)

const owner = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"

type envelope struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data"`
	RequestID string          `json:"request_id"`
	Error     *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type RouterTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	chain  *mockchain.MockClient
	ids    *mockuuid.MockGenerator
	router *gin.Engine
}

func (s *RouterTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (s *RouterTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.chain = mockchain.NewMockClient(s.ctrl)
	s.ids = mockuuid.NewMockGenerator(s.ctrl)
	s.ids.EXPECT().New().Return("req-1").AnyTimes()

	s.router = api.NewRouter(&api.RouterConfig{
		ServiceProvider: services.NewProvider(&services.ProviderConfig{ChainClient: s.chain}),
		UUIDGenerator:   s.ids,
	})
}

func (s *RouterTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) get(path string) (*httptest.ResponseRecorder, *envelope) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var body envelope
	if rec.Header().Get("Content-Type") != "" && path != "/healthz" {
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, &body
}

func (s *RouterTestSuite) TestHealthz() {
	rec, _ := s.get("/healthz")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"status":"ok"}`, rec.Body.String())
}

func (s *RouterTestSuite) TestContract() {
	rec, body := s.get("/api/contract")
	s.Equal(http.StatusOK, rec.Code)
	s.True(body.Success)
	s.Equal("req-1", body.RequestID)
	s.Equal("req-1", rec.Header().Get("X-Request-ID"))
	s.JSONEq(`{"address":"`+contract.Address+`"}`, string(body.Data))
}

func (s *RouterTestSuite) TestCharacter() {
	s.chain.EXPECT().GetUserNFT(gomock.Any(), common.HexToAddress(owner)).
		Return(testutils.CreateTestCharacterNFT("Knight", 100, 100, 15), nil)
	s.chain.EXPECT().BlockNumber(gomock.Any()).Return(uint64(7), nil)

	rec, body := s.get("/api/characters/" + owner)
	s.Require().Equal(http.StatusOK, rec.Code)

	var snapshot entities.CharacterSnapshot
	s.Require().NoError(json.Unmarshal(body.Data, &snapshot))
	s.Equal(owner, snapshot.Owner)
	s.Equal(&entities.Character{
		Name:         "Knight",
		ImageURI:     "ipfs://Knight",
		Hp:           100,
		MaxHp:        100,
		AttackDamage: 15,
	}, snapshot.Character)
	s.Equal(int64(7), snapshot.Meta.GetNumberOrDefault(entities.MetaBlock, 0))
}

func (s *RouterTestSuite) TestCharacter_SecondReadIsCached() {
	s.chain.EXPECT().GetUserNFT(gomock.Any(), common.HexToAddress(owner)).
		Return(testutils.CreateTestCharacterNFT("Knight", 100, 100, 15), nil).Times(1)
	s.chain.EXPECT().BlockNumber(gomock.Any()).Return(uint64(7), nil).Times(1)

	s.get("/api/characters/" + owner)
	rec, body := s.get("/api/characters/" + owner)
	s.Require().Equal(http.StatusOK, rec.Code)

	var snapshot entities.CharacterSnapshot
	s.Require().NoError(json.Unmarshal(body.Data, &snapshot))
	s.True(snapshot.Meta.GetBoolOrDefault(entities.MetaCached, false))
}

func (s *RouterTestSuite) TestCharacter_RefreshBypassesCache() {
	s.chain.EXPECT().GetUserNFT(gomock.Any(), common.HexToAddress(owner)).
		Return(testutils.CreateTestCharacterNFT("Knight", 100, 100, 15), nil).Times(2)
	s.chain.EXPECT().BlockNumber(gomock.Any()).Return(uint64(7), nil).Times(2)

	s.get("/api/characters/" + owner)
	rec, _ := s.get("/api/characters/" + owner + "?refresh=true")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *RouterTestSuite) TestCharacter_BadRefreshFlag() {
	rec, body := s.get("/api/characters/" + owner + "?refresh=maybe")
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("invalid_argument", body.Error.Code)
}

func (s *RouterTestSuite) TestCharacter_InvalidAddress() {
	rec, body := s.get("/api/characters/0x1234")
	s.Equal(http.StatusBadRequest, rec.Code)
	s.False(body.Success)
	s.Equal("invalid_argument", body.Error.Code)
}

func (s *RouterTestSuite) TestCharacter_NotFound() {
	s.chain.EXPECT().GetUserNFT(gomock.Any(), common.HexToAddress(owner)).
		Return(nil, apperr.NotFound("no character"))

	rec, body := s.get("/api/characters/" + owner)
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("not_found", body.Error.Code)
}

func (s *RouterTestSuite) TestCharacter_OutOfRange() {
	nft := testutils.CreateTestCharacterNFT("Titan", 1, 1, 1)
	nft.AttackDamage = new(big.Int).Lsh(big.NewInt(1), 60)
	s.chain.EXPECT().GetUserNFT(gomock.Any(), common.HexToAddress(owner)).Return(nft, nil)

	rec, body := s.get("/api/characters/" + owner)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Equal("out_of_range", body.Error.Code)
}

func (s *RouterTestSuite) TestDefaultCharacters() {
	s.chain.EXPECT().GetAllDefaultCharacters(gomock.Any()).Return([]*entities.CharacterNFT{
		testutils.CreateTestCharacterNFT("Knight", 100, 100, 15),
	}, nil)

	rec, body := s.get("/api/characters/default")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[{"name":"Knight","imageURI":"ipfs://Knight","hp":100,"maxHp":100,"attackDamage":15}]`, string(body.Data))
}

func (s *RouterTestSuite) TestBoss_Unavailable() {
	s.chain.EXPECT().GetBigBoss(gomock.Any()).Return(nil, apperr.Unavailablef("dial tcp: refused"))

	rec, body := s.get("/api/boss")
	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Equal("unavailable", body.Error.Code)
}

func (s *RouterTestSuite) TestBoss_InternalErrorHidesDetails() {
	s.chain.EXPECT().GetBigBoss(gomock.Any()).Return(nil, apperr.Internal("abi: cannot unmarshal secret thing"))

	rec, body := s.get("/api/boss")
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("internal error", body.Error.Message)
}
