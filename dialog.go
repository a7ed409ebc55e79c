package main

import (
	"errors"
	"fmt"
	"strings"
)

func NewDialogEngine(catalog *Catalog) *DialogEngine {
	return &DialogEngine{
		sessions: make(map[int64]*Session),
		catalog:  catalog,
	}
}

// StartAdd opens the add-movie flow for a chat. An already open session
// for the same chat is overwritten, not merged.
func (d *DialogEngine) StartAdd(chatID int64) string {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.sessions[chatID] = &Session{Step: stepAwaitID}
	return "Kino ID kiriting (masalan 202):"
}

func (d *DialogEngine) StartDelete(chatID int64) string {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.sessions[chatID] = &Session{Step: stepAwaitDeleteID}
	return "O'chiriladigan kino ID sini kiriting:"
}

// StartVideoAttach captures the uploaded video's file id and waits for the
// admin to name the movie it belongs to.
func (d *DialogEngine) StartVideoAttach(chatID int64, fileID string) string {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.sessions[chatID] = &Session{Step: stepAwaitVideoTarget, FileID: fileID}
	return "Kino ID ni kiriting (shu videoga mos):"
}

func (d *DialogEngine) Active(chatID int64) bool {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	_, ok := d.sessions[chatID]
	return ok
}

// Advance feeds one text message into the chat's open session and returns
// the single reply for that step. Terminal steps drop the session whether
// the catalog call succeeded or not.
func (d *DialogEngine) Advance(chatID int64, text string) string {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	session, ok := d.sessions[chatID]
	if !ok {
		return ""
	}

	switch session.Step {
	case stepAwaitID:
		if _, exists := d.catalog.Get(text); exists {
			delete(d.sessions, chatID)
			return fmt.Sprintf("⚠️ %s kodli kino allaqachon mavjud!", text)
		}
		session.ID = text
		session.Step = stepAwaitTitle
		return "Kino title yuboring:"

	case stepAwaitTitle:
		session.Title = text
		session.Step = stepAwaitDescription
		return "Kino description yuboring (yoki skip):"

	case stepAwaitDescription:
		if !strings.EqualFold(text, "skip") {
			session.Description = text
		}
		session.Step = stepAwaitYear
		return "Chiqarilgan yili (yoki skip):"

	case stepAwaitYear:
		if !strings.EqualFold(text, "skip") {
			session.Year = text
		}
		delete(d.sessions, chatID)
		err := d.catalog.Create(session.ID, session.Title, session.Description, session.Year)
		if errors.Is(err, ErrAlreadyExists) {
			return fmt.Sprintf("⚠️ %s kodli kino allaqachon mavjud!", session.ID)
		}
		if err != nil {
			return fmt.Sprintf("❌ Kinoni saqlashda xatolik: %v", err)
		}
		return fmt.Sprintf("✅ Kino qo'shildi: %s - %s\nEndi video fayl yuboring (ixtiyoriy).", session.ID, session.Title)

	case stepAwaitDeleteID:
		delete(d.sessions, chatID)
		title, err := d.catalog.Delete(text)
		if errors.Is(err, ErrNotFound) {
			return fmt.Sprintf("❌ %s raqamli kino topilmadi.", text)
		}
		if err != nil {
			return fmt.Sprintf("❌ Kinoni o'chirishda xatolik: %v", err)
		}
		return fmt.Sprintf("🗑 Kino o'chirildi: %s - %s", text, title)

	case stepAwaitVideoTarget:
		delete(d.sessions, chatID)
		err := d.catalog.AttachVideo(text, session.FileID)
		if errors.Is(err, ErrNotFound) {
			return "❌ Bunday ID topilmadi. Avval kino qo'shing."
		}
		if err != nil {
			return fmt.Sprintf("❌ Videoni saqlashda xatolik: %v", err)
		}
		return fmt.Sprintf("🎥 Video saqlandi! Kino ID: %s", text)
	}

	delete(d.sessions, chatID)
	return ""
}
