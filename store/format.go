package store

import (
	"ak-storefront/models"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// OrderStamp is the placement time split the way receipts display it.
type OrderStamp struct {
	Day  string
	Date string
	Time string
}

var arabicWeekdays = [...]string{"الأحد", "الاثنين", "الثلاثاء", "الأربعاء", "الخميس", "الجمعة", "السبت"}

var arabicDigits = strings.NewReplacer(
	"0", "٠", "1", "١", "2", "٢", "3", "٣", "4", "٤",
	"5", "٥", "6", "٦", "7", "٧", "8", "٨", "9", "٩",
)

// FormatOrderTime renders t as en-US or ar-QA style day, date and time strings.
func FormatOrderTime(t time.Time, lang models.Language) OrderStamp {
	if lang == models.LanguageArabic {
		suffix := "ص"
		if t.Hour() >= 12 {
			suffix = "م"
		}
		return OrderStamp{
			Day:  arabicWeekdays[t.Weekday()],
			Date: arabicDigits.Replace(t.Format("2/1/2006")),
			Time: arabicDigits.Replace(t.Format("3:04:05")) + " " + suffix,
		}
	}
	return OrderStamp{
		Day:  t.Weekday().String(),
		Date: t.Format("1/2/2006"),
		Time: t.Format("3:04:05 PM"),
	}
}

// FormatAddress composes the single-line delivery address for a housing type.
// An unset housing type is treated as Standalone.
func FormatAddress(a models.Address) string {
	switch a.Housing {
	case models.HousingCompound:
		return fmt.Sprintf("Unit: %s, Bldg: %s, St: %s, Zone: %s (Compound)", a.Unit, a.Bldg, a.Street, a.Zone)
	case models.HousingFlat:
		return fmt.Sprintf("Flat: %s, Floor: %s, Bldg: %s, St: %s, Zone: %s", a.Flat, a.Floor, a.Bldg, a.Street, a.Zone)
	case models.HousingTower:
		return fmt.Sprintf("Apt: %s, Floor: %s, Bldg: %s (%s), St: %s, Zone: %s", a.Apartment, a.Floor, a.Bldg, a.BldgName, a.Street, a.Zone)
	default:
		return fmt.Sprintf("Bldg: %s, St: %s, Zone: %s (Standalone)", a.Bldg, a.Street, a.Zone)
	}
}

// OrderIDLength is the number of characters in a generated order id.
const OrderIDLength = 9

// NewOrderID returns a random uppercase base36 token of OrderIDLength characters.
func NewOrderID() string {
	u := uuid.New()
	id := strings.ToUpper(strconv.FormatUint(binary.BigEndian.Uint64(u[:8]), 36))
	if len(id) < OrderIDLength {
		id = strings.Repeat("0", OrderIDLength-len(id)) + id
	}
	return id[len(id)-OrderIDLength:]
}
