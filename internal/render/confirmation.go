package render

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/ride-dispatch/internal/entities"
)

const lineShareBase = "https://line.me/R/msg/text/?"

var weekdays = [...]string{"日", "一", "二", "三", "四", "五", "六"}

//go:embed confirmation.html
var confirmationHTML string

var confirmationTmpl = template.Must(template.New("confirmation").Parse(confirmationHTML))

// Confirmation is what a passenger sees after submitting an order.
type Confirmation struct {
	Text     string
	ShareURL string
}

func NewConfirmation(o entities.Order, req entities.RideRequest) Confirmation {
	text := strings.Join([]string{
		"乘客姓名：" + o.PassengerID,
		"聯絡電話：" + o.Phone,
		"用車日期：" + DateDisplay(req.PickupDate),
		"預約時間：" + TimeDisplay(req.PickupHour, req.PickupMinute),
		"",
		"上車地點：",
		o.Pickup,
		"",
		"下車地點：",
		o.Dropoff,
		"",
		"班機號碼：" + o.FlightNo,
		"搭車人數：" + o.PeopleCount,
		"行李數：" + o.LuggageCount,
	}, "\n")

	return Confirmation{
		Text:     text,
		ShareURL: LineShareURL(text),
	}
}

// DateDisplay turns "2024-06-01" or "2024-6-1" into "6月1日(週六)". Anything else is returned unchanged.
func DateDisplay(date string) string {
	parts := strings.Split(strings.TrimSpace(date), "-")
	if len(parts) != 3 {
		return date
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return date
		}
		nums[i] = n
	}

	year, month, day := nums[0], nums[1], nums[2]
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return fmt.Sprintf("%d月%d日(週%s)", month, day, weekdays[d.Weekday()])
}

// TimeDisplay turns a 24h hour and minute into "PM 2:05".
func TimeDisplay(hour, minute string) string {
	h, errH := strconv.Atoi(strings.TrimSpace(hour))
	m, errM := strconv.Atoi(strings.TrimSpace(minute))
	if errH != nil || errM != nil {
		return hour + ":" + minute
	}

	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	display := h
	switch {
	case h == 0:
		display = 12
	case h > 12:
		display = h - 12
	}
	return fmt.Sprintf("%s %d:%02d", period, display, m)
}

// LineShareURL builds a LINE share link. Spaces are encoded as %20, LINE does not decode "+".
func LineShareURL(text string) string {
	return lineShareBase + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

func WriteConfirmationPage(w io.Writer, c Confirmation) error {
	return confirmationTmpl.Execute(w, c)
}
