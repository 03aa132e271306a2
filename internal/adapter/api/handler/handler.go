package handler

import (
	"linkup/internal/usecase"
)

var (
	profileHandler  *ProfileHandler
	activityHandler *ActivityHandler
	matchingHandler *MatchingHandler
)

func Setup(
	profileUseCase *usecase.ProfileUseCase,
	activityUseCase *usecase.ActivityUseCase,
	mentorUseCase *usecase.MentorUseCase,
) {
	profileHandler = NewProfileHandler(profileUseCase)
	activityHandler = NewActivityHandler(activityUseCase)
	matchingHandler = NewMatchingHandler(mentorUseCase)
}

func GetProfileHandler() *ProfileHandler {
	return profileHandler
}

func GetActivityHandler() *ActivityHandler {
	return activityHandler
}

func GetMatchingHandler() *MatchingHandler {
	return matchingHandler
}
