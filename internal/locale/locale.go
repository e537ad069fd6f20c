// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package locale holds the bilingual (English/Thai) text used by the note
// lifecycle and the terminal UI.
package locale

import "github.com/MKhiriev/idea-voice/models"

// ProcessingFailedError is the ErrorMessage stored on every failed note.
// It is intentionally not localized.
const ProcessingFailedError = "Failed to process"

// Strings is the full set of user-visible text for one language.
type Strings struct {
	App       AppStrings
	Lifecycle LifecycleStrings
	NoteList  NoteListStrings
	Record    RecordStrings
	Detail    DetailStrings
	Settings  SettingsStrings
}

type AppStrings struct {
	Name              string
	Slogan            string
	SearchPlaceholder string
	RecordButton      string
	Settings          string
	Loading           string
}

// LifecycleStrings are written into notes by the lifecycle controller.
type LifecycleStrings struct {
	PlaceholderTitle      string
	PlaceholderTranscript string
	FailedTitle           string
	FailedTranscript      string
}

type NoteListStrings struct {
	EmptyTitle         string
	EmptySubtitle      string
	ProcessingTitle    string
	ProcessingSubtitle string
	AudioDuration      string
	Hints              string
}

type RecordStrings struct {
	Title          string
	TapToFinish    string
	MicAccessError string
	Hints          string
}

type DetailStrings struct {
	CapturedOn    string
	At            string
	Title         string
	Date          string
	Summary       string
	KeyPoints     string
	ActionItems   string
	Transcript    string
	Tags          string
	NoKeyPoints   string
	NoActionItems string
	DeleteConfirm string
	Copied        string
	AudioSaved    string
	DeleteFailed  string
	Hints         string
}

type SettingsStrings struct {
	Title          string
	Language       string
	DataManagement string
	BackupDesc     string
	BackupBtn      string
	RestoreBtn     string
	ClearBtn       string
	ClearConfirm   string
	PathPrompt     string
	Hints          string
	Status         StatusStrings
}

type StatusStrings struct {
	Loading       string
	BackupSuccess string
	BackupError   string
	RestoreDone   string
	RestoreError  string
	ClearSuccess  string
	ClearError    string
	SkippedItems  string
}

var english = Strings{
	App: AppStrings{
		Name:              "IdeaVoice",
		Slogan:            "Capture ideas instantly.",
		SearchPlaceholder: "Search ideas...",
		RecordButton:      "Record Idea",
		Settings:          "Settings",
		Loading:           "Loading...",
	},
	Lifecycle: LifecycleStrings{
		PlaceholderTitle:      "Processing...",
		PlaceholderTranscript: "Wait a moment while we process your thought...",
		FailedTitle:           "Processing Failed",
		FailedTranscript:      "Sorry, we couldn't process this audio. Please try again.",
	},
	NoteList: NoteListStrings{
		EmptyTitle:         "No notes found.",
		EmptySubtitle:      "Start recording to capture your ideas.",
		ProcessingTitle:    "Processing Idea...",
		ProcessingSubtitle: "AI is listening to your audio and extracting key insights...",
		AudioDuration:      "s audio",
		Hints:              "r record  / search  enter open  s settings  v about  q quit",
	},
	Record: RecordStrings{
		Title:          "Recording Idea",
		TapToFinish:    "Press enter to finish",
		MicAccessError: "Microphone access denied or not available. Please check permissions.",
		Hints:          "enter finish  esc cancel",
	},
	Detail: DetailStrings{
		CapturedOn:    "Captured on",
		At:            "at",
		Title:         "Title",
		Date:          "Date",
		Summary:       "Summary",
		KeyPoints:     "Key Points",
		ActionItems:   "Action Items",
		Transcript:    "Transcript",
		Tags:          "Tags",
		NoKeyPoints:   "No key points extracted.",
		NoActionItems: "No action items detected.",
		DeleteConfirm: "Are you sure you want to delete this note?",
		Copied:        "Copied to clipboard.",
		AudioSaved:    "Audio saved to",
		DeleteFailed:  "Could not delete note. Please try again.",
		Hints:         "c copy text  w save audio  d delete  esc back",
	},
	Settings: SettingsStrings{
		Title:          "Settings",
		Language:       "Language",
		DataManagement: "Data Management",
		BackupDesc:     "Your notes are stored locally on this device. Create a backup file to keep your data safe or transfer it to another device.",
		BackupBtn:      "Backup All Data",
		RestoreBtn:     "Restore Backup",
		ClearBtn:       "Clear Local Storage",
		ClearConfirm:   "Are you sure? This will delete ALL notes permanently. This cannot be undone.",
		PathPrompt:     "File path",
		Hints:          "l language  b backup  r restore  x clear  esc back",
		Status: StatusStrings{
			Loading:       "Processing...",
			BackupSuccess: "Backup saved successfully.",
			BackupError:   "Failed to export data.",
			RestoreDone:   "Data restored successfully.",
			RestoreError:  "Failed to import. Invalid file.",
			ClearSuccess:  "All data cleared.",
			ClearError:    "Failed to clear data.",
			SkippedItems:  "invalid items skipped",
		},
	},
}

var thai = Strings{
	App: AppStrings{
		Name:              "IdeaVoice",
		Slogan:            "บันทึกไอเดียได้ทันที",
		SearchPlaceholder: "ค้นหาไอเดีย...",
		RecordButton:      "บันทึกเสียง",
		Settings:          "การตั้งค่า",
		Loading:           "กำลังโหลด...",
	},
	Lifecycle: LifecycleStrings{
		PlaceholderTitle:      "กำลังประมวลผล...",
		PlaceholderTranscript: "โปรดรอสักครู่...",
		FailedTitle:           "การประมวลผลล้มเหลว",
		FailedTranscript:      "ขออภัย เราไม่สามารถประมวลผลเสียงนี้ได้",
	},
	NoteList: NoteListStrings{
		EmptyTitle:         "ไม่พบโน้ต",
		EmptySubtitle:      "เริ่มบันทึกเพื่อเก็บไอเดียของคุณ",
		ProcessingTitle:    "กำลังประมวลผล...",
		ProcessingSubtitle: "AI กำลังฟังและสรุปใจความสำคัญ...",
		AudioDuration:      " วินาที",
		Hints:              "r บันทึก  / ค้นหา  enter เปิด  s ตั้งค่า  v เกี่ยวกับ  q ออก",
	},
	Record: RecordStrings{
		Title:          "กำลังบันทึก",
		TapToFinish:    "กด enter เพื่อเสร็จสิ้น",
		MicAccessError: "ไม่สามารถเข้าถึงไมโครโฟนได้ โปรดตรวจสอบสิทธิ์การเข้าถึง",
		Hints:          "enter เสร็จสิ้น  esc ยกเลิก",
	},
	Detail: DetailStrings{
		CapturedOn:    "บันทึกเมื่อ",
		At:            "เวลา",
		Title:         "ชื่อเรื่อง",
		Date:          "วันที่",
		Summary:       "สรุป",
		KeyPoints:     "ประเด็นสำคัญ",
		ActionItems:   "สิ่งที่ต้องทำ",
		Transcript:    "คำถอดความ",
		Tags:          "แท็ก",
		NoKeyPoints:   "ไม่พบประเด็นสำคัญ",
		NoActionItems: "ไม่มีสิ่งที่ต้องทำ",
		DeleteConfirm: "คุณแน่ใจหรือไม่ว่าต้องการลบโน้ตนี้?",
		Copied:        "คัดลอกแล้ว",
		AudioSaved:    "บันทึกไฟล์เสียงที่",
		DeleteFailed:  "ไม่สามารถลบโน้ตได้ โปรดลองอีกครั้ง",
		Hints:         "c คัดลอก  w บันทึกเสียง  d ลบ  esc กลับ",
	},
	Settings: SettingsStrings{
		Title:          "การตั้งค่า",
		Language:       "ภาษา",
		DataManagement: "จัดการข้อมูล",
		BackupDesc:     "โน้ตของคุณถูกจัดเก็บไว้ในเครื่อง สร้างไฟล์สำรองข้อมูลเพื่อเก็บรักษาข้อมูลหรือย้ายไปยังอุปกรณ์อื่น",
		BackupBtn:      "สำรองข้อมูลทั้งหมด",
		RestoreBtn:     "กู้คืนข้อมูล",
		ClearBtn:       "ล้างข้อมูลในเครื่อง",
		ClearConfirm:   "คุณแน่ใจหรือไม่? การกระทำนี้จะลบโน้ตทั้งหมดถาวรและไม่สามารถกู้คืนได้",
		PathPrompt:     "ที่อยู่ไฟล์",
		Hints:          "l ภาษา  b สำรอง  r กู้คืน  x ล้าง  esc กลับ",
		Status: StatusStrings{
			Loading:       "กำลังดำเนินการ...",
			BackupSuccess: "บันทึกไฟล์สำรองข้อมูลสำเร็จ",
			BackupError:   "ส่งออกข้อมูลไม่สำเร็จ",
			RestoreDone:   "กู้คืนข้อมูลสำเร็จ",
			RestoreError:  "กู้คืนไม่สำเร็จ ไฟล์ไม่ถูกต้อง",
			ClearSuccess:  "ล้างข้อมูลเรียบร้อยแล้ว",
			ClearError:    "ล้างข้อมูลไม่สำเร็จ",
			SkippedItems:  "รายการที่ไม่ถูกต้องถูกข้าม",
		},
	},
}

// For returns the strings for lang; unknown languages get English.
func For(lang models.Language) Strings {
	if lang == models.Thai {
		return thai
	}
	return english
}

// DateLayout is the Go time layout used for note dates in lang.
func DateLayout(lang models.Language) string {
	if lang == models.Thai {
		return "2/1/2006"
	}
	return "1/2/2006"
}

// TimeLayout is the Go time layout used for note times in lang.
func TimeLayout(lang models.Language) string {
	if lang == models.Thai {
		return "15:04"
	}
	return "03:04 PM"
}
