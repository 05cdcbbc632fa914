package view

import (
	"strings"
	"time"

	"github.com/syedhisham/live-courses-frontend/internal/model"
)

// The dashboard renders courses through a closed set of named card variants
// instead of one card with presentation flags.

type Thumbnail string

const (
	ThumbnailVideo Thumbnail = "video"
	ThumbnailFiles Thumbnail = "files"
)

// BrowseCard is the catalog view of a course for prospective students.
type BrowseCard struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	Instructor    string    `json:"instructor"`
	MaterialCount int       `json:"materialCount"`
	Thumbnail     Thumbnail `json:"thumbnail"`
	CreatedAt     time.Time `json:"createdAt"`
}

// PurchasedCard is the owner's view: materials are listed for access.
type PurchasedCard struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Materials []MaterialItem `json:"materials"`
}

// MaterialItem is one downloadable asset on a purchased card. URL may be
// empty until resolved via the access-url endpoint.
type MaterialItem struct {
	ID          string `json:"id"`
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	URL         string `json:"url,omitempty"`
}

// InstructorManageCard is the instructor's view of their own course: the
// scheduled session's status plus whether the start action applies.
type InstructorManageCard struct {
	ID            string                  `json:"id"`
	Title         string                  `json:"title"`
	Price         float64                 `json:"price"`
	MaterialCount int                     `json:"materialCount"`
	SessionID     string                  `json:"sessionId,omitempty"`
	SessionStatus model.LiveSessionStatus `json:"sessionStatus,omitempty"`
	CanStart      bool                    `json:"canStart"`
}

// NewBrowseCard builds the catalog variant from a course.
func NewBrowseCard(course model.Course) BrowseCard {
	instructor := course.Instructor.Name
	if instructor == "" {
		instructor = "Unknown Instructor"
	}
	return BrowseCard{
		ID:            course.ID,
		Title:         course.Title,
		Description:   course.Description,
		Price:         course.Price,
		Instructor:    instructor,
		MaterialCount: len(course.Materials),
		Thumbnail:     thumbnailFor(course),
		CreatedAt:     course.CreatedAt,
	}
}

// NewPurchasedCard builds the owner variant from a course.
func NewPurchasedCard(course model.Course) PurchasedCard {
	items := make([]MaterialItem, 0, len(course.Materials))
	for _, m := range course.Materials {
		items = append(items, MaterialItem{
			ID:          m.ID,
			Filename:    m.Filename,
			ContentType: m.ContentType,
			URL:         m.URL,
		})
	}
	return PurchasedCard{
		ID:        course.ID,
		Title:     course.Title,
		Materials: items,
	}
}

// NewInstructorManageCard builds the instructor variant from a course.
func NewInstructorManageCard(course model.Course) InstructorManageCard {
	card := InstructorManageCard{
		ID:            course.ID,
		Title:         course.Title,
		Price:         course.Price,
		MaterialCount: len(course.Materials),
	}
	if course.LiveSession != nil {
		card.SessionID = course.LiveSession.ID
		card.SessionStatus = course.LiveSession.Status
		card.CanStart = course.LiveSession.Status == model.LiveSessionScheduled
	}
	return card
}

// BrowseCards maps a course list onto browse cards, preserving order.
func BrowseCards(courses []model.Course) []BrowseCard {
	cards := make([]BrowseCard, 0, len(courses))
	for _, c := range courses {
		cards = append(cards, NewBrowseCard(c))
	}
	return cards
}

// PurchasedCards maps a course list onto purchased cards, preserving order.
func PurchasedCards(courses []model.Course) []PurchasedCard {
	cards := make([]PurchasedCard, 0, len(courses))
	for _, c := range courses {
		cards = append(cards, NewPurchasedCard(c))
	}
	return cards
}

// InstructorManageCards maps a course list onto manage cards, preserving order.
func InstructorManageCards(courses []model.Course) []InstructorManageCard {
	cards := make([]InstructorManageCard, 0, len(courses))
	for _, c := range courses {
		cards = append(cards, NewInstructorManageCard(c))
	}
	return cards
}

func thumbnailFor(course model.Course) Thumbnail {
	if len(course.Materials) > 0 && strings.Contains(course.Materials[0].ContentType, "video") {
		return ThumbnailVideo
	}
	return ThumbnailFiles
}
