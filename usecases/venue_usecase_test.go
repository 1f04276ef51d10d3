package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/fyyur/fyyur-backend/mocks"
	"github.com/fyyur/fyyur-backend/models"
	"github.com/fyyur/fyyur-backend/repositories/clock"
)

type VenueUsecaseTestSuite struct {
	suite.Suite
	exec               *mocks.Transaction
	transaction        *mocks.Transaction
	executorFactory    *mocks.ExecutorFactory
	transactionFactory *mocks.TransactionFactory
	venueRepository    *mocks.VenueRepository
	showRepository     *mocks.ShowRepository

	ctx             context.Context
	now             time.Time
	venue           models.Venue
	input           models.VenueInput
	repositoryError error
}

func (suite *VenueUsecaseTestSuite) SetupTest() {
	suite.exec = new(mocks.Transaction)
	suite.transaction = new(mocks.Transaction)
	suite.executorFactory = new(mocks.ExecutorFactory)
	suite.transactionFactory = &mocks.TransactionFactory{TxMock: suite.transaction}
	suite.venueRepository = new(mocks.VenueRepository)
	suite.showRepository = new(mocks.ShowRepository)

	suite.ctx = context.Background()
	suite.now = time.Date(2024, 5, 21, 18, 0, 0, 0, time.UTC)
	suite.input = models.VenueInput{
		Name:    " The Musical Hop ",
		Genres:  []string{"Jazz", "Reggae", "Jazz"},
		City:    "San Francisco",
		State:   "ca",
		Address: "1015 Folsom Street",
		Phone:   "123-123-1234",
	}
	suite.venue = models.Venue{
		Id:      1,
		Name:    "The Musical Hop",
		Genres:  []string{"Jazz", "Reggae"},
		City:    "San Francisco",
		State:   "CA",
		Address: "1015 Folsom Street",
		Phone:   "123-123-1234",
	}
	suite.repositoryError = errors.New("some repository error")
}

func (suite *VenueUsecaseTestSuite) makeUsecase() *VenueUsecase {
	return &VenueUsecase{
		executorFactory:    suite.executorFactory,
		transactionFactory: suite.transactionFactory,
		venueRepository:    suite.venueRepository,
		showRepository:     suite.showRepository,
		clock:              clock.NewMock(suite.now),
	}
}

func (suite *VenueUsecaseTestSuite) AssertExpectations() {
	t := suite.T()
	suite.executorFactory.AssertExpectations(t)
	suite.transactionFactory.AssertExpectations(t)
	suite.venueRepository.AssertExpectations(t)
	suite.showRepository.AssertExpectations(t)
}

func (suite *VenueUsecaseTestSuite) TestListAreas() {
	suite.executorFactory.On("NewExecutor").Return(suite.exec)
	suite.venueRepository.On("ListVenues", suite.ctx, suite.exec, suite.now).Return([]models.LocatedVenue{
		{VenueSummary: models.VenueSummary{Id: 2, Name: "The Dueling Pianos Bar"}, City: "New York", State: "NY"},
		{VenueSummary: models.VenueSummary{Id: 1, Name: "The Musical Hop", NumUpcomingShows: 1}, City: "San Francisco", State: "CA"},
		{VenueSummary: models.VenueSummary{Id: 3, Name: "Park Square"}, City: "San Francisco", State: "CA"},
	}, nil)

	areas, err := suite.makeUsecase().ListAreas(suite.ctx)

	suite.NoError(err)
	suite.Equal([]models.Area{
		{City: "San Francisco", State: "CA", Venues: []models.VenueSummary{
			{Id: 1, Name: "The Musical Hop", NumUpcomingShows: 1},
			{Id: 3, Name: "Park Square"},
		}},
		{City: "New York", State: "NY", Venues: []models.VenueSummary{
			{Id: 2, Name: "The Dueling Pianos Bar"},
		}},
	}, areas)
	suite.AssertExpectations()
}

func (suite *VenueUsecaseTestSuite) TestSearchVenues() {
	suite.executorFactory.On("NewExecutor").Return(suite.exec)
	suite.venueRepository.On("SearchVenues", suite.ctx, suite.exec, "hop", suite.now).Return([]models.VenueSummary{
		{Id: 3, Name: "Park Square Live Music & Coffee"},
		{Id: 1, Name: "The Musical Hop"},
		{Id: 4, Name: "Hop"},
	}, nil)

	result, err := suite.makeUsecase().SearchVenues(suite.ctx, "hop")

	suite.NoError(err)
	suite.Equal("hop", result.SearchTerm)
	suite.Equal(3, result.Count)
	suite.Equal("Hop", result.Data[0].Name)
	suite.AssertExpectations()
}

func (suite *VenueUsecaseTestSuite) TestGetVenueDetail() {
	past := models.ShowSummary{Id: 1, VenueId: 1, ArtistId: 4, StartTime: suite.now.Add(-24 * time.Hour)}
	now := models.ShowSummary{Id: 2, VenueId: 1, ArtistId: 5, StartTime: suite.now}
	upcoming := models.ShowSummary{Id: 3, VenueId: 1, ArtistId: 6, StartTime: suite.now.Add(time.Hour)}

	suite.executorFactory.On("NewExecutor").Return(suite.exec)
	suite.venueRepository.On("GetVenueById", suite.ctx, suite.exec, int64(1)).Return(suite.venue, nil)
	suite.showRepository.On("ListShowsOfVenue", suite.ctx, suite.exec, int64(1)).
		Return([]models.ShowSummary{past, now, upcoming}, nil)

	detail, err := suite.makeUsecase().GetVenueDetail(suite.ctx, 1)

	suite.NoError(err)
	suite.Equal(suite.venue, detail.Venue)
	suite.Equal([]models.ShowSummary{past, now}, detail.PastShows)
	suite.Equal([]models.ShowSummary{upcoming}, detail.UpcomingShows)
	suite.Equal(2, detail.PastShowsCount())
	suite.Equal(1, detail.UpcomingShowsCount())
	suite.AssertExpectations()
}

func (suite *VenueUsecaseTestSuite) TestGetVenueDetail_not_found() {
	suite.executorFactory.On("NewExecutor").Return(suite.exec)
	suite.venueRepository.On("GetVenueById", suite.ctx, suite.exec, int64(9)).
		Return(models.Venue{}, models.ErrVenueNotFound)

	_, err := suite.makeUsecase().GetVenueDetail(suite.ctx, 9)

	suite.ErrorIs(err, models.NotFoundError)
	suite.AssertExpectations()
}

func (suite *VenueUsecaseTestSuite) TestCreateVenue() {
	normalized := models.VenueInput{
		Name:    "The Musical Hop",
		Genres:  []string{"Jazz", "Reggae"},
		City:    "San Francisco",
		State:   "CA",
		Address: "1015 Folsom Street",
		Phone:   "123-123-1234",
	}
	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.venueRepository.On("CreateVenue", suite.ctx, suite.transaction, normalized).Return(int64(1), nil)
	suite.venueRepository.On("GetVenueById", suite.ctx, suite.transaction, int64(1)).Return(suite.venue, nil)

	venue, err := suite.makeUsecase().CreateVenue(suite.ctx, suite.input)

	suite.NoError(err)
	suite.Equal(suite.venue, venue)
	suite.AssertExpectations()
}

func (suite *VenueUsecaseTestSuite) TestCreateVenue_invalid() {
	suite.input.Name = "  "
	suite.input.State = "XX"
	suite.input.Genres = []string{"Polka"}

	_, err := suite.makeUsecase().CreateVenue(suite.ctx, suite.input)

	suite.ErrorIs(err, models.BadParameterError)
	var fieldErrors models.FieldValidationError
	suite.Require().True(errors.As(err, &fieldErrors))
	suite.Contains(fieldErrors, "name")
	suite.Contains(fieldErrors, "state")
	suite.Contains(fieldErrors, "genres")
	suite.AssertExpectations()
}

func (suite *VenueUsecaseTestSuite) TestCreateVenue_repository_error() {
	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.venueRepository.On("CreateVenue", suite.ctx, suite.transaction, mock.Anything).
		Return(int64(0), suite.repositoryError)

	_, err := suite.makeUsecase().CreateVenue(suite.ctx, suite.input)

	suite.ErrorIs(err, suite.repositoryError)
	suite.AssertExpectations()
}

func (suite *VenueUsecaseTestSuite) TestUpdateVenue_not_found() {
	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.venueRepository.On("UpdateVenue", suite.ctx, suite.transaction, int64(7), mock.Anything).
		Return(models.ErrVenueNotFound)

	_, err := suite.makeUsecase().UpdateVenue(suite.ctx, 7, suite.input)

	suite.ErrorIs(err, models.NotFoundError)
	suite.AssertExpectations()
}

func (suite *VenueUsecaseTestSuite) TestDeleteVenue() {
	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.showRepository.On("DeleteShowsOfVenue", suite.ctx, suite.transaction, int64(1)).Return(nil)
	suite.venueRepository.On("DeleteVenue", suite.ctx, suite.transaction, int64(1)).Return(nil)

	err := suite.makeUsecase().DeleteVenue(suite.ctx, 1)

	suite.NoError(err)
	suite.AssertExpectations()
}

func (suite *VenueUsecaseTestSuite) TestDeleteVenue_shows_error() {
	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.showRepository.On("DeleteShowsOfVenue", suite.ctx, suite.transaction, int64(1)).Return(suite.repositoryError)

	err := suite.makeUsecase().DeleteVenue(suite.ctx, 1)

	suite.ErrorIs(err, suite.repositoryError)
	suite.venueRepository.AssertNotCalled(suite.T(), "DeleteVenue", mock.Anything, mock.Anything, mock.Anything)
	suite.AssertExpectations()
}

func (suite *VenueUsecaseTestSuite) TestDeleteVenue_traced() {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	usecase := suite.makeUsecase()
	usecase.tracer = provider.Tracer("fyyur-test")

	inSpan := mock.MatchedBy(func(ctx context.Context) bool {
		return trace.SpanFromContext(ctx).SpanContext().IsValid()
	})
	suite.transactionFactory.On("Transaction", inSpan, mock.Anything).Return(nil)
	suite.showRepository.On("DeleteShowsOfVenue", inSpan, suite.transaction, int64(3)).Return(nil)
	suite.venueRepository.On("DeleteVenue", inSpan, suite.transaction, int64(3)).Return(nil)

	suite.NoError(usecase.DeleteVenue(suite.ctx, 3))

	spans := recorder.Ended()
	suite.Require().Len(spans, 1)
	suite.Equal("VenueUsecase.DeleteVenue", spans[0].Name())
	suite.Equal("fyyur-test", spans[0].InstrumentationScope().Name)
	suite.Contains(spans[0].Attributes(), attribute.Int64("venue_id", 3))
	suite.AssertExpectations()
}

func TestVenueUsecase(t *testing.T) {
	suite.Run(t, new(VenueUsecaseTestSuite))
}
