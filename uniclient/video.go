package uniclient

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

// FlowState is the video workflow's lifecycle state
type FlowState string

const (
	StateIdle             FlowState = "idle"
	StatePlaying          FlowState = "playing"
	StateEnded            FlowState = "ended"
	StateProgressRecorded FlowState = "progress_recorded"
	StateRatingPending    FlowState = "rating_pending"
	StateRatingSubmitted  FlowState = "rating_submitted"
)

// ErrNoVideoSelected is returned when an operation needs a current video
var ErrNoVideoSelected = errors.New("no video selected")

// Player is an owned handle to an embedded video player instance
type Player interface {
	// Destroy tears the player instance down. It is called at most once per
	// instance; errors are reported but never propagated to the UI.
	Destroy() error
}

// PlayerFactory creates a player for a provider video reference
type PlayerFactory func(providerRef string) (Player, error)

// Video is one course video with its server-side rating aggregate
type Video struct {
	ID              int
	Title           string
	ProviderRef     string
	DurationSeconds int
	AverageRating   float64
	RatingCount     int
}

// Course is the parent course with its server-side rating aggregate
type Course struct {
	ID            int
	Title         string
	AverageRating float64
	RatingCount   int
}

// RatingDraft is the transient state of a pending video rating
type RatingDraft struct {
	Rating float64
	Review string
}

// VideoAPI is the slice of the API client the video flow needs
type VideoAPI interface {
	// RecordProgress records a watch-progress event for a video
	RecordProgress(ctx context.Context, courseID, videoID int, payload ProgressPayload) error
	// RateVideo submits a rating and returns the server-computed aggregates
	RateVideo(ctx context.Context, courseID, videoID int, payload RatingPayload) (*RatingAggregates, error)
}

// VideoFlow drives watching and rating the videos of one course. It owns the
// embedded player for the current video: switching videos or closing the flow
// tears the previous player down exactly once, and teardown failures are
// logged and swallowed so they can never take the UI down with them.
//
// The rating prompt opens whenever playback ends or the user asks for it,
// whether or not the progress POST succeeded; SubmitRating then re-sends
// progress and refuses to submit the rating if that fails.
type VideoFlow struct {
	client        VideoAPI
	identity      IdentityProvider
	notifier      Notifier
	logger        *zap.Logger
	playerFactory PlayerFactory

	mu             sync.Mutex
	course         Course
	videos         []Video
	state          FlowState
	currentID      int
	player         Player
	draft          *RatingDraft
	ratingInFlight map[int]struct{}
}

// NewVideoFlow creates a video flow over a course and its videos
func NewVideoFlow(
	client VideoAPI,
	identity IdentityProvider,
	notifier Notifier,
	logger *zap.Logger,
	playerFactory PlayerFactory,
	course Course,
	videos []Video,
) *VideoFlow {
	return &VideoFlow{
		client:         client,
		identity:       identity,
		notifier:       notifier,
		logger:         logger,
		playerFactory:  playerFactory,
		course:         course,
		videos:         videos,
		state:          StateIdle,
		ratingInFlight: make(map[int]struct{}),
	}
}

// State returns the current workflow state
func (f *VideoFlow) State() FlowState {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.state
}

// Course returns the course with its current aggregate
func (f *VideoFlow) Course() Course {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.course
}

// Videos returns a copy of the video list with current aggregates
func (f *VideoFlow) Videos() []Video {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]Video, len(f.videos))
	copy(out, f.videos)
	return out
}

// CurrentVideo returns the video being played, if any
func (f *VideoFlow) CurrentVideo() (Video, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.currentVideoLocked()
}

// SelectVideo switches playback to another video of the course. Any live
// player is torn down before the new one is created; only one player instance
// exists at a time.
func (f *VideoFlow) SelectVideo(videoID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	idx := f.videoIndexLocked(videoID)
	if idx < 0 {
		return ErrNoVideoSelected
	}

	f.teardownPlayerLocked()
	f.currentID = videoID
	f.draft = nil

	player, err := f.playerFactory(f.videos[idx].ProviderRef)
	if err != nil {
		f.logger.Error("failed to create player",
			zap.Int("video_id", videoID),
			zap.Error(err),
		)
		f.state = StateIdle
		f.currentID = 0
		f.notifier.Notify(Notification{Level: LevelError, Message: "Failed to load the video player"})
		return err
	}

	f.player = player
	f.state = StatePlaying
	return nil
}

// Close tears down the player and resets the flow, for component unmount
func (f *VideoFlow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.teardownPlayerLocked()
	f.currentID = 0
	f.draft = nil
	f.state = StateIdle
}

// HandlePlayerEnded records a completion progress event for the current video
// and opens the rating prompt. A progress failure is reported but does not
// keep the prompt closed; the submit path re-sends progress anyway.
func (f *VideoFlow) HandlePlayerEnded(ctx context.Context) error {
	f.mu.Lock()
	video, ok := f.currentVideoLocked()
	if !ok {
		f.mu.Unlock()
		return ErrNoVideoSelected
	}
	f.state = StateEnded
	f.mu.Unlock()

	err := f.sendProgress(ctx, video)

	f.mu.Lock()
	if err == nil && f.currentID == video.ID {
		f.state = StateProgressRecorded
	}
	f.openPromptLocked(video.ID)
	f.mu.Unlock()

	if err != nil {
		f.logger.Error("failed to record progress on video end",
			zap.Int("video_id", video.ID),
			zap.Error(err),
		)
		f.notifier.Notify(Notification{Level: LevelError, Message: progressMessage(err)})
	}

	return err
}

// OpenRatingPrompt opens the rating prompt on user request, sending a
// progress event the same way the end-of-playback path does
func (f *VideoFlow) OpenRatingPrompt(ctx context.Context) error {
	f.mu.Lock()
	video, ok := f.currentVideoLocked()
	if !ok {
		f.mu.Unlock()
		return ErrNoVideoSelected
	}
	f.mu.Unlock()

	err := f.sendProgress(ctx, video)

	f.mu.Lock()
	f.openPromptLocked(video.ID)
	f.mu.Unlock()

	if err != nil {
		f.logger.Error("failed to record progress on manual prompt",
			zap.Int("video_id", video.ID),
			zap.Error(err),
		)
		f.notifier.Notify(Notification{Level: LevelError, Message: progressMessage(err)})
	}

	return err
}

// Draft returns a copy of the pending rating draft, if the prompt is open
func (f *VideoFlow) Draft() (RatingDraft, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.draft == nil {
		return RatingDraft{}, false
	}
	return *f.draft, true
}

// SetDraftRating updates the pending rating value
func (f *VideoFlow) SetDraftRating(rating float64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.draft != nil {
		f.draft.Rating = rating
	}
}

// SetDraftReview updates the pending review text
func (f *VideoFlow) SetDraftReview(review string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.draft != nil {
		f.draft.Review = review
	}
}

// CancelRating discards the draft and closes the prompt
func (f *VideoFlow) CancelRating() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.draft = nil
	if f.state == StateRatingPending {
		f.state = StateEnded
	}
}

// SubmitRating re-sends the progress event for the current video and, only if
// that succeeds, posts the rating. On success the server's aggregates for the
// video and the course replace the local values verbatim. A second submit for
// the same video while one is in flight is a no-op.
func (f *VideoFlow) SubmitRating(ctx context.Context) error {
	f.mu.Lock()

	video, ok := f.currentVideoLocked()
	if !ok {
		f.mu.Unlock()
		return ErrNoVideoSelected
	}
	if f.draft == nil {
		f.mu.Unlock()
		return errors.New("rating prompt is not open")
	}

	identity, haveIdentity := f.identity.Current()
	if !haveIdentity {
		f.mu.Unlock()
		f.notifier.Notify(Notification{Level: LevelError, Message: "Please log in to submit a rating"})
		return ErrLoginRequired
	}

	if _, busy := f.ratingInFlight[video.ID]; busy {
		f.mu.Unlock()
		return nil
	}
	f.ratingInFlight[video.ID] = struct{}{}

	draft := *f.draft
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		delete(f.ratingInFlight, video.ID)
		f.mu.Unlock()
	}()

	// Progress must be on record before the rating is accepted
	if err := f.sendProgress(ctx, video); err != nil {
		f.logger.Error("failed to record progress before rating",
			zap.Int("video_id", video.ID),
			zap.Error(err),
		)
		f.notifier.Notify(Notification{Level: LevelError, Message: progressMessage(err)})
		return err
	}

	aggregates, err := f.client.RateVideo(ctx, f.course.ID, video.ID, RatingPayload{
		StudentID: identity.StudentID,
		Rating:    draft.Rating,
		Review:    draft.Review,
	})
	if err != nil {
		f.logger.Error("failed to submit rating",
			zap.Int("video_id", video.ID),
			zap.Error(err),
		)
		f.notifier.Notify(Notification{Level: LevelError, Message: submitMessage(err)})
		return err
	}

	f.mu.Lock()
	if idx := f.videoIndexLocked(video.ID); idx >= 0 {
		f.videos[idx].AverageRating = aggregates.Video.AverageRating
		f.videos[idx].RatingCount = aggregates.Video.RatingCount
	}
	f.course.AverageRating = aggregates.Course.AverageRating
	f.course.RatingCount = aggregates.Course.RatingCount
	f.draft = nil
	f.state = StateRatingSubmitted
	f.mu.Unlock()

	f.notifier.Notify(Notification{Level: LevelSuccess, Message: "Thanks for your rating!"})
	return nil
}

// currentVideoLocked returns the current video; callers hold f.mu
func (f *VideoFlow) currentVideoLocked() (Video, bool) {
	if f.currentID == 0 {
		return Video{}, false
	}
	if idx := f.videoIndexLocked(f.currentID); idx >= 0 {
		return f.videos[idx], true
	}
	return Video{}, false
}

// videoIndexLocked finds a video's index in the list; callers hold f.mu
func (f *VideoFlow) videoIndexLocked(videoID int) int {
	for i := range f.videos {
		if f.videos[i].ID == videoID {
			return i
		}
	}
	return -1
}

// teardownPlayerLocked destroys the live player, if any. Destroy errors are
// logged and swallowed; callers hold f.mu.
func (f *VideoFlow) teardownPlayerLocked() {
	if f.player == nil {
		return
	}
	if err := f.player.Destroy(); err != nil {
		f.logger.Warn("player teardown failed", zap.Int("video_id", f.currentID), zap.Error(err))
	}
	f.player = nil
}

// openPromptLocked opens the rating prompt with the default rating of 5;
// callers hold f.mu
func (f *VideoFlow) openPromptLocked(videoID int) {
	if f.currentID != videoID {
		return
	}
	if f.draft == nil {
		f.draft = &RatingDraft{Rating: 5}
	}
	f.state = StateRatingPending
}

// sendProgress posts a completion progress event for video
func (f *VideoFlow) sendProgress(ctx context.Context, video Video) error {
	identity, ok := f.identity.Current()
	if !ok {
		return ErrLoginRequired
	}

	return f.client.RecordProgress(ctx, f.course.ID, video.ID, ProgressPayload{
		StudentID:      identity.StudentID,
		WatchedSeconds: video.DurationSeconds,
		Completed:      true,
	})
}

// progressMessage maps a progress failure to its user-facing message
func progressMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if errors.Is(err, ErrLoginRequired) || errors.Is(err, ErrUnauthenticated) {
		return "Please log in to continue"
	}
	return "Failed to record your progress. Please try again."
}
