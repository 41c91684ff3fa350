package model

// Topic 帖子所属的话题，只允许固定的枚举值
type Topic string

const (
	TopicPerimenopause Topic = "Perimenopause"
	TopicMenopause     Topic = "Menopause"
	TopicPostMenopause Topic = "Post-menopause"
	TopicMentalHealth  Topic = "Mental Health"
	TopicNutrition     Topic = "Nutrition"
	TopicSleep         Topic = "Sleep"
	TopicFitness       Topic = "Fitness"
	TopicRelationships Topic = "Relationships"
	TopicCaregiving    Topic = "Caregiving"
)

var Topics = []Topic{
	TopicPerimenopause,
	TopicMenopause,
	TopicPostMenopause,
	TopicMentalHealth,
	TopicNutrition,
	TopicSleep,
	TopicFitness,
	TopicRelationships,
	TopicCaregiving,
}

// Valid 区分大小写的精确匹配
func (t Topic) Valid() bool {
	for _, v := range Topics {
		if t == v {
			return true
		}
	}
	return false
}
