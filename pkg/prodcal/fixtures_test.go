package prodcal

const periodListBody = `{
  "status": "ok",
  "country_code": "ru",
  "country_text": "Россия",
  "region_id": 0,
  "dt_start": "01.01.2025",
  "dt_end": "03.01.2025",
  "work_week_type": "Пятидневная рабочая неделя",
  "period": "период",
  "statistic": {
    "calendar_days": 3,
    "calendar_days_without_holidays": 0,
    "work_days": 0,
    "weekends": 0,
    "holidays": 3,
    "shortened_working_days": 0,
    "working_hours": 0
  },
  "days": [
    {"date": "01.01.2025", "type_id": 3, "type_text": "Государственный праздник", "week_day": "ср", "working_hours": 0, "is_project": false, "is_wsch": false},
    {"date": "02.01.2025", "type_id": 3, "type_text": "Государственный праздник", "week_day": "чт", "working_hours": 0},
    {"date": "03.01.2025", "type_id": 3, "type_text": "Государственный праздник", "week_day": "пт", "working_hours": 0}
  ]
}`

const periodMapBody = `{
  "status": "ok",
  "country_code": "ru",
  "country_text": "Россия",
  "region_id": 77,
  "dt_start": "01.03.2025",
  "dt_end": "31.03.2025",
  "work_week_type": "Пятидневная рабочая неделя",
  "period": "месяц",
  "statistic": {
    "calendar_days": 31,
    "calendar_days_without_holidays": 31,
    "work_days": 21,
    "weekends": 10,
    "holidays": 0,
    "shortened_working_days": 1,
    "working_hours": 167
  },
  "days": {
    "07.03.2025": {"date": "07.03.2025", "type_id": 5, "type_text": "Сокращённый рабочий день", "week_day": "пт", "working_hours": 7},
    "08.03.2025": {"date": "08.03.2025", "type_id": 3, "type_text": "Государственный праздник", "week_day": "сб", "working_hours": 0, "is_project": true}
  }
}`

const workWeekBody = `{
  "status": "ok",
  "country_code": "ru",
  "country_text": "Россия",
  "work_week_type": "Пятидневная рабочая неделя",
  "work_week_start": "03.03.2025",
  "work_week_end": "07.03.2025"
}`
